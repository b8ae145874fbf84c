package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.HTTPPort != "8081" {
		t.Errorf("expected default HTTP port 8081, got %s", cfg.HTTPPort)
	}
	if cfg.FrameThreshold != 10 || cfg.DirectionThreshold != 30 {
		t.Errorf("unexpected tracking thresholds: %d/%d", cfg.FrameThreshold, cfg.DirectionThreshold)
	}
	if cfg.RecentFrames < cfg.FrameThreshold-1 {
		t.Errorf("recent-frames exclusion %d must cover the confirmation run of %d frames",
			cfg.RecentFrames, cfg.FrameThreshold)
	}
	if len(cfg.ApprovedLabels) == 0 {
		t.Error("expected a default approved label list")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("FRAME_THRESHOLD", "7")
	t.Setenv("APPROVED_LABELS", "apple, banana ,")

	cfg := LoadConfig()

	if cfg.HTTPPort != "9999" {
		t.Errorf("expected override port, got %s", cfg.HTTPPort)
	}
	if cfg.FrameThreshold != 7 {
		t.Errorf("expected override threshold 7, got %d", cfg.FrameThreshold)
	}
	if len(cfg.ApprovedLabels) != 2 || cfg.ApprovedLabels[0] != "apple" || cfg.ApprovedLabels[1] != "banana" {
		t.Errorf("expected trimmed label list, got %v", cfg.ApprovedLabels)
	}
}

func TestDSNForLogHidesPassword(t *testing.T) {
	t.Setenv("DB_PASSWORD", "hunter2")
	cfg := LoadConfig()

	if got := cfg.DSNForLog(); got == cfg.DSN() {
		t.Error("DSNForLog must not equal the real DSN when a password is set")
	}
}
