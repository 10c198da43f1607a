package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/finfree-dev/finfree/internal/config"
	"github.com/finfree-dev/finfree/internal/model"
	"github.com/finfree-dev/finfree/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	mode := cfg.Profile.Mode
	if mode == "" {
		mode = string(model.ModeSimple)
	}
	rateStr := strconv.FormatFloat(cfg.Profile.WithdrawalRatePct, 'f', -1, 64)
	contribStr := ""
	if cfg.Profile.MonthlyContribution > 0 {
		contribStr = strconv.FormatFloat(cfg.Profile.MonthlyContribution, 'f', -1, 64)
	}
	apiKey := cfg.Quotes.APIKey
	themeName := cfg.Appearance.Theme
	masked := cfg.General.MaskedAmounts

	themeOptions := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOptions = append(themeOptions, huh.NewOption(th.Name, th.Name))
	}

	positiveNumber := func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 {
			return fmt.Errorf("enter a non-negative number")
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Freedom number calculation").
				Description("Simple divides the gap by a flat withdrawal rate; advanced uses the weighted yield of your asset buckets.").
				Options(
					huh.NewOption("Simple (flat withdrawal rate)", string(model.ModeSimple)),
					huh.NewOption("Advanced (weighted bucket yield)", string(model.ModeAdvanced)),
				).
				Value(&mode),
			huh.NewInput().
				Title("Withdrawal rate %").
				Description("Used by simple mode; 4 is the classic rule.").
				Validate(positiveNumber).
				Value(&rateStr),
			huh.NewInput().
				Title("Monthly contribution").
				Description("Dollars added to investments each month. Blank to skip.").
				Validate(positiveNumber).
				Value(&contribStr),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Quotes API key").
				Description("For stock prices. Blank to skip; crypto quotes work without it.").
				EchoMode(huh.EchoModePassword).
				Value(&apiKey),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOptions...).
				Value(&themeName),
			huh.NewConfirm().
				Title("Mask dollar amounts by default?").
				Value(&masked),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup aborted: %w", err)
	}

	cfg.Profile.Mode = mode
	if v, err := strconv.ParseFloat(strings.TrimSpace(rateStr), 64); err == nil && v > 0 {
		cfg.Profile.WithdrawalRatePct = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(contribStr), 64); err == nil && v > 0 {
		cfg.Profile.MonthlyContribution = v
	}
	cfg.Quotes.APIKey = strings.TrimSpace(apiKey)
	cfg.Appearance.Theme = themeName
	cfg.General.MaskedAmounts = masked

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `finfree setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func maskAPIKey(key string) string {
	if len(key) > 16 {
		return key[:8] + "..." + key[len(key)-4:]
	}
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return "****"
}
