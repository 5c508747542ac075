package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("expected default timeout 15s, got %v", cfg.HTTPTimeout)
	}
	if cfg.InsightsDays != 28 {
		t.Errorf("expected default window 28 days, got %d", cfg.InsightsDays)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("ADS_API_URL", "http://ads.local")
	t.Setenv("ADS_ACCOUNT_ID", "acct-1")
	t.Setenv("PORT", "9090")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "30")
	t.Setenv("INSIGHTS_DAYS", "14")

	cfg := FromEnv()

	if !cfg.Configured() {
		t.Error("expected configured with ADS_API_URL set")
	}
	if cfg.AccountID != "acct-1" || cfg.Port != "9090" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.InsightsDays != 14 {
		t.Errorf("expected 14 day window, got %d", cfg.InsightsDays)
	}
}

func TestConfigured_False(t *testing.T) {
	if (Config{}).Configured() {
		t.Error("empty config should not be configured")
	}
}
