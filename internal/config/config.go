// Package config loads and saves finfree configuration from the XDG
// config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/finfree-dev/finfree/internal/model"
)

// Config holds all finfree configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Profile    ProfileConfig    `toml:"profile"`
	Quotes     QuotesConfig     `toml:"quotes"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	MaskedAmounts bool   `toml:"masked_amounts"`
	DataDir       string `toml:"data_dir,omitempty"`
}

// ProfileConfig holds the user's planning assumptions. Withdrawal rate
// always has a value; zero means "not set" for the optional rates.
type ProfileConfig struct {
	WithdrawalRatePct   float64 `toml:"withdrawal_rate_pct"`
	ExpectedReturnPct   float64 `toml:"expected_return_pct,omitempty"`
	InflationPct        float64 `toml:"inflation_pct,omitempty"`
	TaxBracketPct       float64 `toml:"tax_bracket_pct,omitempty"`
	MonthlyContribution float64 `toml:"monthly_contribution,omitempty"`
	Mode                string  `toml:"mode"`
}

// QuotesConfig holds price lookup API settings.
type QuotesConfig struct {
	APIKey        string `toml:"api_key,omitempty"`
	StockBaseURL  string `toml:"stock_base_url,omitempty"`
	CryptoBaseURL string `toml:"crypto_base_url,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Profile: ProfileConfig{
			WithdrawalRatePct: 4,
			Mode:              string(model.ModeSimple),
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "finfree")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "finfree")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory holding the report database, honoring the
// config override and XDG_DATA_HOME.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "finfree")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "finfree")
}

// DBPath returns the full path to the report database.
func DBPath(cfg Config) string {
	return filepath.Join(DataDir(cfg), "finfree.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// GetQuotesAPIKey returns the quotes API key from env var or config, in
// that order.
func GetQuotesAPIKey(cfg Config) string {
	if key := os.Getenv("FINFREE_QUOTES_API_KEY"); key != "" {
		return key
	}
	return cfg.Quotes.APIKey
}

// Profile converts the stored profile settings into the domain type.
// An unknown or missing mode falls back to simple; a missing withdrawal
// rate falls back to 4.
func Profile(cfg Config) model.Profile {
	p := model.Profile{
		WithdrawalRatePct:   cfg.Profile.WithdrawalRatePct,
		ExpectedReturnPct:   cfg.Profile.ExpectedReturnPct,
		InflationPct:        cfg.Profile.InflationPct,
		TaxBracketPct:       cfg.Profile.TaxBracketPct,
		MonthlyContribution: cfg.Profile.MonthlyContribution,
		Mode:                model.ModeSimple,
	}
	if cfg.Profile.Mode == string(model.ModeAdvanced) {
		p.Mode = model.ModeAdvanced
	}
	if p.WithdrawalRatePct <= 0 {
		p.WithdrawalRatePct = 4
	}
	return p
}
