package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// ValidationResult splits problems into fatals (abort startup) and warnings
// (clamped to a safe value, startup continues) — same split the config this
// package was adapted from uses for its agent-wide settings.
type ValidationResult struct {
	Fatals   []error
	Warnings []error
}

func (r *ValidationResult) HasFatals() bool { return len(r.Fatals) > 0 }

// ValidateTiered checks the config for invalid values. Dangerous zero/negative
// values that would break the tone mapper or file output are clamped and
// reported as warnings; an empty save directory is fatal. Whether the save
// directory is writable is not checked here.
func (c *Config) ValidateTiered() ValidationResult {
	var r ValidationResult

	if c.PaperWhiteOverrideNits < 0 {
		r.Warnings = append(r.Warnings, fmt.Errorf("paper_white_override_nits %.1f is negative, clamping to 0 (query OS)", c.PaperWhiteOverrideNits))
		c.PaperWhiteOverrideNits = 0
	}

	if c.ThumbnailLongEdge <= 0 {
		r.Warnings = append(r.Warnings, fmt.Errorf("thumbnail_long_edge %d is non-positive, clamping to 360", c.ThumbnailLongEdge))
		c.ThumbnailLongEdge = 360
	} else if c.ThumbnailLongEdge > 4096 {
		r.Warnings = append(r.Warnings, fmt.Errorf("thumbnail_long_edge %d exceeds maximum 4096, clamping", c.ThumbnailLongEdge))
		c.ThumbnailLongEdge = 4096
	}

	if c.SaveDirectory == "" {
		r.Fatals = append(r.Fatals, fmt.Errorf("save_directory must not be empty"))
	}

	if c.LogLevel != "" && !validLogLevels[strings.ToLower(c.LogLevel)] {
		r.Warnings = append(r.Warnings, fmt.Errorf("log_level %q is not valid (use debug, info, warn, error), defaulting to info", c.LogLevel))
		c.LogLevel = "info"
	}

	if c.LogFormat != "" && c.LogFormat != "text" && c.LogFormat != "json" {
		r.Warnings = append(r.Warnings, fmt.Errorf("log_format %q is not valid (use text or json), defaulting to text", c.LogFormat))
		c.LogFormat = "text"
	}

	return r
}
