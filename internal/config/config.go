// Package config loads hdrsnap's on-disk preferences the way the tray/hotkey
// host (out of scope for this core, see spec §1) would persist and hand them
// off: a viper-backed YAML file under the user's config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/hdrsnap/hdrsnap/internal/logging"
)

var log = logging.L("config")

// Config holds the tunables the capture core reads at startup. One field
// mirrors the single boolean the host is specified to own (CopyToClipboard);
// the rest are knobs the core itself needs to be configurable without a
// rebuild (where to save, whether to trust the OS paper-white query, logging).
type Config struct {
	// CopyToClipboard selects the hand-off target (§6): true copies the
	// finished SDR bitmap to the clipboard, false writes it to SaveDirectory.
	// This is the one preference spec.md says the tray host persists.
	CopyToClipboard bool `mapstructure:"copy_to_clipboard"`

	// SaveDirectory is where file-output captures are written when
	// CopyToClipboard is false and no explicit save path is given.
	SaveDirectory string `mapstructure:"save_directory"`

	// PaperWhiteOverrideNits forces the tone mapper's paper-white value
	// instead of querying the OS (§4.4.1). Zero means "query the OS".
	PaperWhiteOverrideNits float64 `mapstructure:"paper_white_override_nits"`

	// ThumbnailLongEdge is the longest-edge size in pixels for the toast
	// thumbnail (§6). Spec default is 360.
	ThumbnailLongEdge int `mapstructure:"thumbnail_long_edge"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		CopyToClipboard:        false,
		SaveDirectory:          defaultSaveDirectory(),
		PaperWhiteOverrideNits: 0,
		ThumbnailLongEdge:      360,
		LogLevel:               "info",
		LogFormat:              "text",
	}
}

// Load reads the config file (or falls back to Default) and validates it.
// Fatal problems abort startup; everything else is logged as a warning and
// clamped to a safe value — same tiered-validation split the teacher used
// for its agent config.
func Load(cfgFile string) (*Config, error) {
	cfg := Default()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(configDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("HDRSNAP")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	result := cfg.ValidateTiered()
	for _, err := range result.Warnings {
		log.Warn("config validation", "error", err)
	}
	if result.HasFatals() {
		for _, err := range result.Fatals {
			log.Error("config validation fatal", "error", err)
		}
		return nil, fmt.Errorf("config has fatal validation errors: %v", result.Fatals[0])
	}

	return cfg, nil
}

// Save persists CopyToClipboard (the field the host flips at runtime, e.g.
// from a tray menu toggle) together with SaveDirectory,
// PaperWhiteOverrideNits and ThumbnailLongEdge. LogLevel and LogFormat are
// not written.
func Save(cfg *Config) error {
	viper.Set("copy_to_clipboard", cfg.CopyToClipboard)
	viper.Set("save_directory", cfg.SaveDirectory)
	viper.Set("paper_white_override_nits", cfg.PaperWhiteOverrideNits)
	viper.Set("thumbnail_long_edge", cfg.ThumbnailLongEdge)

	if err := os.MkdirAll(configDir(), 0700); err != nil {
		return err
	}
	cfgPath := filepath.Join(configDir(), "config.yaml")
	return viper.WriteConfigAs(cfgPath)
}

func defaultSaveDirectory() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "Pictures", "Screenshots")
	}
	return "."
}

func configDir() string {
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "hdrsnap")
	}
	return "."
}
