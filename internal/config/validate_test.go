package config

import "testing"

func TestValidateTieredNegativePaperWhiteIsWarning(t *testing.T) {
	cfg := Default()
	cfg.PaperWhiteOverrideNits = -10
	result := cfg.ValidateTiered()
	if result.HasFatals() {
		t.Fatalf("expected no fatals, got %v", result.Fatals)
	}
	if cfg.PaperWhiteOverrideNits != 0 {
		t.Fatalf("expected clamp to 0, got %v", cfg.PaperWhiteOverrideNits)
	}
}

func TestValidateTieredThumbnailClamping(t *testing.T) {
	cfg := Default()
	cfg.ThumbnailLongEdge = 0
	result := cfg.ValidateTiered()
	if result.HasFatals() {
		t.Fatalf("expected no fatals, got %v", result.Fatals)
	}
	if cfg.ThumbnailLongEdge != 360 {
		t.Fatalf("expected clamp to 360, got %d", cfg.ThumbnailLongEdge)
	}

	cfg.ThumbnailLongEdge = 100000
	result = cfg.ValidateTiered()
	if cfg.ThumbnailLongEdge != 4096 {
		t.Fatalf("expected clamp to 4096, got %d", cfg.ThumbnailLongEdge)
	}
	_ = result
}

func TestValidateTieredEmptySaveDirectoryIsFatal(t *testing.T) {
	cfg := Default()
	cfg.SaveDirectory = ""
	result := cfg.ValidateTiered()
	if !result.HasFatals() {
		t.Fatal("expected fatal for empty save_directory")
	}
}

func TestValidateTieredUnknownLogLevelIsWarning(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "verbose"
	result := cfg.ValidateTiered()
	if result.HasFatals() {
		t.Fatalf("expected no fatals, got %v", result.Fatals)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default to info, got %q", cfg.LogLevel)
	}
}

func TestValidateTieredInvalidLogFormatIsWarning(t *testing.T) {
	cfg := Default()
	cfg.LogFormat = "xml"
	result := cfg.ValidateTiered()
	if result.HasFatals() {
		t.Fatalf("expected no fatals, got %v", result.Fatals)
	}
	if cfg.LogFormat != "text" {
		t.Fatalf("expected default to text, got %q", cfg.LogFormat)
	}
}

func TestHasFatals(t *testing.T) {
	var r ValidationResult
	if r.HasFatals() {
		t.Fatal("HasFatals() on empty result should be false")
	}
	r.Fatals = append(r.Fatals, errBoom)
	if !r.HasFatals() {
		t.Fatal("HasFatals() should be true with a fatal error")
	}
}

var errBoom = &testError{"boom"}

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }
