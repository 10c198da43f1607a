package cmd

import (
	"fmt"

	"github.com/finfree-dev/finfree/internal/cli"
	"github.com/finfree-dev/finfree/internal/metrics"
	"github.com/finfree-dev/finfree/internal/model"

	"github.com/spf13/cobra"
)

var ratiosCmd = &cobra.Command{
	Use:   "ratios",
	Short: "Financial health ratios for the latest report",
	RunE:  runRatios,
}

func init() {
	rootCmd.AddCommand(ratiosCmd)
}

func runRatios(_ *cobra.Command, _ []string) error {
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

	ratios := metrics.ComputeRatios(metrics.Aggregate(latest.Data))

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("RATIOS  %s", model.MonthKey(latest.Month))))
	fmt.Println()

	var rows [][]string
	for _, row := range ratios.Rows() {
		value := cli.FormatMonths(row.Value)
		if row.IsPercent {
			value = cli.FormatPercent(row.Value)
		}
		rows = append(rows, []string{row.Name, value, row.Target, cli.Good(row.Good)})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Ratio", "Value", "Target", ""},
		Rows:    rows,
	}))
	return nil
}
