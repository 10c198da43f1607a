package config

import (
	"testing"

	"github.com/finfree-dev/finfree/internal/model"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Profile.WithdrawalRatePct != 4 {
		t.Fatalf("default withdrawal rate = %v, want 4", cfg.Profile.WithdrawalRatePct)
	}
	if cfg.Profile.Mode != string(model.ModeSimple) {
		t.Fatalf("default mode = %q, want simple", cfg.Profile.Mode)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("default theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Profile.WithdrawalRatePct != 4 {
		t.Fatalf("missing config withdrawal rate = %v, want 4", cfg.Profile.WithdrawalRatePct)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.MaskedAmounts = true
	cfg.Profile.Mode = string(model.ModeAdvanced)
	cfg.Profile.MonthlyContribution = 1000
	cfg.Quotes.APIKey = "test-key"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !got.General.MaskedAmounts {
		t.Fatal("masked_amounts not persisted")
	}
	if got.Profile.Mode != string(model.ModeAdvanced) {
		t.Fatalf("mode = %q, want advanced", got.Profile.Mode)
	}
	if got.Profile.MonthlyContribution != 1000 {
		t.Fatalf("monthly contribution = %v, want 1000", got.Profile.MonthlyContribution)
	}
	if got.Quotes.APIKey != "test-key" {
		t.Fatalf("api key = %q, want test-key", got.Quotes.APIKey)
	}
}

func TestGetQuotesAPIKeyEnvOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Quotes.APIKey = "from-config"

	t.Setenv("FINFREE_QUOTES_API_KEY", "")
	if got := GetQuotesAPIKey(cfg); got != "from-config" {
		t.Fatalf("GetQuotesAPIKey = %q, want from-config", got)
	}

	t.Setenv("FINFREE_QUOTES_API_KEY", "from-env")
	if got := GetQuotesAPIKey(cfg); got != "from-env" {
		t.Fatalf("GetQuotesAPIKey = %q, want from-env", got)
	}
}

func TestProfileConversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Profile.Mode = "advanced"
	cfg.Profile.WithdrawalRatePct = 0

	p := Profile(cfg)
	if p.Mode != model.ModeAdvanced {
		t.Fatalf("mode = %s, want advanced", p.Mode)
	}
	if p.WithdrawalRatePct != 4 {
		t.Fatalf("zero withdrawal rate should fall back to 4, got %v", p.WithdrawalRatePct)
	}

	cfg.Profile.Mode = "bogus"
	if got := Profile(cfg).Mode; got != model.ModeSimple {
		t.Fatalf("unknown mode = %s, want simple fallback", got)
	}
}

func TestDataDirOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataDir = "/tmp/custom"
	if got := DataDir(cfg); got != "/tmp/custom" {
		t.Fatalf("DataDir = %q, want override", got)
	}

	cfg.General.DataDir = ""
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	if got := DataDir(cfg); got != "/tmp/xdg/finfree" {
		t.Fatalf("DataDir = %q, want /tmp/xdg/finfree", got)
	}
}
