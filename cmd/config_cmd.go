package cmd

import (
	"fmt"

	"github.com/finfree-dev/finfree/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Masked amounts: %v\n", cfg.General.MaskedAmounts)
	fmt.Printf("    Data directory: %s\n", config.DataDir(cfg))
	fmt.Printf("    Database:       %s\n", config.DBPath(cfg))
	fmt.Println()

	fmt.Println("  [Profile]")
	fmt.Printf("    Mode:                 %s\n", cfg.Profile.Mode)
	fmt.Printf("    Withdrawal rate:      %.2f%%\n", cfg.Profile.WithdrawalRatePct)
	if cfg.Profile.ExpectedReturnPct > 0 {
		fmt.Printf("    Expected return:      %.2f%%\n", cfg.Profile.ExpectedReturnPct)
	}
	if cfg.Profile.MonthlyContribution > 0 {
		fmt.Printf("    Monthly contribution: $%.0f\n", cfg.Profile.MonthlyContribution)
	}
	fmt.Println()

	fmt.Println("  [Quotes]")
	apiKey := config.GetQuotesAPIKey(cfg)
	if apiKey != "" {
		fmt.Printf("    API key: %s\n", maskAPIKey(apiKey))
	} else {
		fmt.Println("    API key: not configured")
	}
	if cfg.Quotes.StockBaseURL != "" {
		fmt.Printf("    Stock API:  %s\n", cfg.Quotes.StockBaseURL)
	}
	if cfg.Quotes.CryptoBaseURL != "" {
		fmt.Printf("    Crypto API: %s\n", cfg.Quotes.CryptoBaseURL)
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `finfree setup` to reconfigure.")
	return nil
}
