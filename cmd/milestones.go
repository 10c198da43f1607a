package cmd

import (
	"fmt"
	"time"

	"github.com/finfree-dev/finfree/internal/cli"
	"github.com/finfree-dev/finfree/internal/metrics"
	"github.com/finfree-dev/finfree/internal/model"

	"github.com/spf13/cobra"
)

var milestonesCmd = &cobra.Command{
	Use:   "milestones",
	Short: "Liquidity, debt, and wealth milestone progress",
	RunE:  runMilestones,
}

func init() {
	rootCmd.AddCommand(milestonesCmd)
}

func runMilestones(_ *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	latest, _, err := latestTwo(st)
	if err != nil {
		return err
	}
	if latest == nil {
		fmt.Println("\n  No reports yet.")
		return nil
	}

	t := metrics.Aggregate(latest.Data)
	milestones := metrics.Milestones(latest.Data, t.TotalIncome*12)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MILESTONES  %s", model.MonthKey(latest.Month))))

	var category model.MilestoneCategory
	for _, m := range milestones {
		if m.Category != category {
			category = m.Category
			fmt.Printf("\n  %s\n", string(category))
		}
		fmt.Printf("  %s %-28s %s\n", cli.Good(m.Achieved()), m.Title, cli.RenderProgressBar(m.Progress/100, 16))
		if m.Message != "" {
			fmt.Printf("      %s\n", m.Message)
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
