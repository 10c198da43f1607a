// Package cmd implements the finfree CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/finfree-dev/finfree/internal/cli"
	"github.com/finfree-dev/finfree/internal/config"
	"github.com/finfree-dev/finfree/internal/model"
	"github.com/finfree-dev/finfree/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagMonth   string
	flagMasked  bool
	flagDataDir string
)

var rootCmd = &cobra.Command{
	Use:   "finfree",
	Short: "Personal finance freedom tracker",
	Long:  "Track monthly income, expenses, assets, and debts; measure the ratios and milestones on the way to financial freedom.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagMonth, "month", "M", "", "Report month as YYYY-MM (default: current month)")
	rootCmd.PersistentFlags().BoolVar(&flagMasked, "masked", false, "Mask dollar amounts in output")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override the data directory")
}

// loadConfig reads the config file, folding the data-dir flag in.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: %v (using defaults)\n", err)
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	return cfg
}

// openStore opens the report database for the current config.
func openStore() (*store.Store, config.Config, error) {
	cfg := loadConfig()
	st, err := store.Open(config.DBPath(cfg))
	if err != nil {
		return nil, cfg, err
	}
	return st, cfg, nil
}

// resolveMonth returns the month key selected by --month, defaulting to
// the current calendar month.
func resolveMonth() (string, error) {
	if flagMonth == "" {
		return model.MonthKey(time.Now()), nil
	}
	if _, err := model.ParseMonthKey(flagMonth); err != nil {
		return "", fmt.Errorf("invalid --month %q, want YYYY-MM", flagMonth)
	}
	return flagMonth, nil
}

// maskedOn reports whether amounts should be masked, from flag or config.
func maskedOn(cfg config.Config) bool {
	return flagMasked || cfg.General.MaskedAmounts
}

// money formats an amount honoring the masked display mode.
func money(v float64, cfg config.Config) string {
	return cli.Money(v, maskedOn(cfg))
}

// latestTwo loads the newest report (required) and its predecessor (may
// be nil) for month-over-month comparisons.
func latestTwo(st *store.Store) (*model.Report, *model.Report, error) {
	reports, err := st.LatestReports(2)
	if err != nil {
		return nil, nil, err
	}
	if len(reports) == 0 {
		return nil, nil, nil
	}
	latest := &reports[0]
	var prev *model.Report
	if len(reports) > 1 {
		prev = &reports[1]
	}
	return latest, prev, nil
}
