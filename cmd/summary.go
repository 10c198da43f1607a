package cmd

import (
	"fmt"
	"time"

	"github.com/finfree-dev/finfree/internal/cli"
	"github.com/finfree-dev/finfree/internal/metrics"
	"github.com/finfree-dev/finfree/internal/model"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Monthly cash flow and net worth summary",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	latest, prev, err := latestTwo(st)
	if err != nil {
		return err
	}
	if latest == nil {
		fmt.Println("\n  No reports yet.")
		fmt.Println("  Start with: finfree report set income.earned1 5000")
		return nil
	}

	t := metrics.Aggregate(latest.Data)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FINFREE  %s", model.MonthKey(latest.Month))))
	fmt.Println()

	rows := [][]string{
		{"Earned income", money(t.Earned, cfg)},
		{"Passive income", money(t.Passive, cfg)},
		{"Portfolio income", money(t.Portfolio, cfg)},
		{"Total income", money(t.TotalIncome, cfg)},
		{"---"},
		{"Total expenses", money(t.TotalExpenses, cfg)},
		{"Housing", money(t.Housing, cfg)},
		{"Debt payments", money(t.DebtPayments, cfg)},
		{"Discretionary", money(t.Discretionary, cfg)},
		{"---"},
		{"Net cash flow", money(t.NetCashFlow, cfg)},
		{"---"},
		{"Assets (investable)", money(t.Assets, cfg)},
		{"Doodads", money(t.Doodads, cfg)},
		{"Liabilities", money(t.Liabilities, cfg)},
		{"Net worth (banker)", money(t.BankerNetWorth, cfg)},
		{"Net worth (rich dad)", money(t.RichDadNetWorth, cfg)},
	}

	table := cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))

	// Month-over-month wins and risks.
	if prev != nil {
		changes := metrics.Compare(latest.Data, prev.Data)
		if len(changes) > 0 {
			fmt.Println()
			for _, c := range changes {
				if c.Kind == model.ChangeWin {
					fmt.Printf("  %s %s\n", cli.Good(true), c.Message)
				} else {
					fmt.Printf("  %s\n", cli.Warn("! "+c.Message))
				}
			}
		}
	}

	dates, err := st.ReportDates()
	if err != nil {
		return err
	}
	streaks := metrics.Streaks(dates, time.Now())
	fmt.Printf("\n  Tracking streak: %d months (longest %d)\n", streaks.Current, streaks.Longest)

	return nil
}
