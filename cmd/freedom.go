package cmd

import (
	"fmt"
	"time"

	"github.com/finfree-dev/finfree/internal/cli"
	"github.com/finfree-dev/finfree/internal/config"
	"github.com/finfree-dev/finfree/internal/metrics"
	"github.com/finfree-dev/finfree/internal/model"

	"github.com/spf13/cobra"
)

var freedomCmd = &cobra.Command{
	Use:   "freedom",
	Short: "Project progress toward each freedom level",
	RunE:  runFreedom,
}

func init() {
	rootCmd.AddCommand(freedomCmd)
}

func runFreedom(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	prof := config.Profile(cfg)
	now := time.Now()

	buckets, err := st.ListBuckets()
	if err != nil {
		return err
	}
	planMap, err := st.ListLevelPlans()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FREEDOM LEVELS  (%s mode)", prof.Mode)))
	fmt.Println()

	var plans []model.LevelPlan
	for _, level := range model.Levels {
		if p, ok := planMap[level]; ok {
			plans = append(plans, p)
		}
	}

	if len(plans) == 0 {
		fmt.Println("  No level plans yet.")
		fmt.Println("  Start with: finfree plan add-expense security Rent 1500")
	} else {
		var rows [][]string
		for _, proj := range metrics.ProjectAll(plans, prof, buckets, now) {
			years := "-"
			if proj.YearsToTarget != nil {
				years = cli.FormatYears(*proj.YearsToTarget)
			} else if proj.Progress >= 1 {
				years = "reached"
			}
			rows = append(rows, []string{
				model.LevelTitle(proj.Level),
				money(proj.AnnualExpenses, cfg),
				money(proj.AnnualGap, cfg),
				money(proj.TargetAssets, cfg),
				cli.RenderProgressBar(proj.Progress, 16),
				years,
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "TARGET ASSETS",
			Headers: []string{"Level", "Annual exp", "Gap", "Target", "Progress", "ETA"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	// Flat-multiple strategy off the latest report, independent of plans.
	latest, _, err := latestTwo(st)
	if err != nil {
		return err
	}
	if latest != nil {
		t := metrics.Aggregate(latest.Data)
		var rows [][]string
		for _, ft := range metrics.FlatTargets(t.TotalExpenses, t.Passive+t.Portfolio) {
			rows = append(rows, []string{
				model.LevelTitle(ft.Level),
				fmt.Sprintf("%.1fx", ft.Multiple),
				money(ft.MonthlyTarget, cfg) + "/mo",
				cli.RenderProgressBar(ft.Progress, 16),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "PASSIVE INCOME MULTIPLES",
			Headers: []string{"Level", "Multiple", "Target", "Progress"},
			Rows:    rows,
		}))
	}

	return nil
}
