package cmd

import (
	"fmt"
	"strconv"

	"github.com/finfree-dev/finfree/internal/cli"
	"github.com/finfree-dev/finfree/internal/model"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Itemize the lifestyle each freedom level should fund",
	RunE:  runPlanShow,
}

var planAddExpenseCmd = &cobra.Command{
	Use:   "add-expense <level> <label> <monthly>",
	Short: "Add a monthly expense line to a level plan",
	Args:  cobra.ExactArgs(3),
	RunE:  runPlanAddExpense,
}

var planAddPassiveCmd = &cobra.Command{
	Use:   "add-passive <level> <label> <annual>",
	Short: "Add an annual passive-income line to a level plan",
	Args:  cobra.ExactArgs(3),
	RunE:  runPlanAddPassive,
}

var planNotesCmd = &cobra.Command{
	Use:   "notes <level> <text>",
	Short: "Set the notes on a level plan",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlanNotes,
}

var planClearCmd = &cobra.Command{
	Use:   "clear <level>",
	Short: "Remove all lines from a level plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlanClear,
}

func init() {
	planCmd.AddCommand(planAddExpenseCmd)
	planCmd.AddCommand(planAddPassiveCmd)
	planCmd.AddCommand(planNotesCmd)
	planCmd.AddCommand(planClearCmd)
	rootCmd.AddCommand(planCmd)
}

func parseLevel(arg string) (model.LevelKey, error) {
	level := model.LevelKey(arg)
	for _, l := range model.Levels {
		if l == level {
			return level, nil
		}
	}
	return "", fmt.Errorf("unknown level %q (security, vitality, independence, freedom, absoluteFreedom)", arg)
}

func runPlanShow(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	plans, err := st.ListLevelPlans()
	if err != nil {
		return err
	}
	if len(plans) == 0 {
		fmt.Println("\n  No level plans yet.")
		fmt.Println("  Start with: finfree plan add-expense security Rent 1500")
		return nil
	}

	fmt.Println()
	for _, level := range model.Levels {
		p, ok := plans[level]
		if !ok {
			continue
		}

		var rows [][]string
		var monthly float64
		for _, e := range p.Expenses {
			rows = append(rows, []string{e.Label, money(e.Monthly, cfg) + "/mo"})
			monthly += e.Monthly
		}
		for _, pi := range p.PassiveIncome {
			rows = append(rows, []string{pi.Label + " (passive)", money(pi.Annual, cfg) + "/yr"})
		}
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"Total expenses", money(monthly, cfg) + "/mo"})

		fmt.Print(cli.RenderTable(cli.Table{
			Title:   model.LevelTitle(level),
			Headers: []string{"Line", "Amount"},
			Rows:    rows,
		}))
		if p.Notes != "" {
			fmt.Printf("  %s\n", p.Notes)
		}
		fmt.Println()
	}
	return nil
}

func runPlanAddExpense(_ *cobra.Command, args []string) error {
	level, err := parseLevel(args[0])
	if err != nil {
		return err
	}
	monthly, err := strconv.ParseFloat(args[2], 64)
	if err != nil || monthly < 0 {
		return fmt.Errorf("invalid monthly amount %q", args[2])
	}

	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	p, err := st.GetLevelPlan(level)
	if err != nil {
		return err
	}
	if p == nil {
		p = &model.LevelPlan{Level: level}
	}
	p.Expenses = append(p.Expenses, model.ExpenseItem{Label: args[1], Monthly: monthly})
	if err := st.SaveLevelPlan(*p); err != nil {
		return err
	}

	fmt.Printf("  %s: %s %s/mo\n", model.LevelTitle(level), args[1], money(monthly, cfg))
	return nil
}

func runPlanAddPassive(_ *cobra.Command, args []string) error {
	level, err := parseLevel(args[0])
	if err != nil {
		return err
	}
	annual, err := strconv.ParseFloat(args[2], 64)
	if err != nil || annual < 0 {
		return fmt.Errorf("invalid annual amount %q", args[2])
	}

	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	p, err := st.GetLevelPlan(level)
	if err != nil {
		return err
	}
	if p == nil {
		p = &model.LevelPlan{Level: level}
	}
	p.PassiveIncome = append(p.PassiveIncome, model.PassiveItem{Label: args[1], Annual: annual})
	if err := st.SaveLevelPlan(*p); err != nil {
		return err
	}

	fmt.Printf("  %s: %s %s/yr passive\n", model.LevelTitle(level), args[1], money(annual, cfg))
	return nil
}

func runPlanNotes(_ *cobra.Command, args []string) error {
	level, err := parseLevel(args[0])
	if err != nil {
		return err
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	p, err := st.GetLevelPlan(level)
	if err != nil {
		return err
	}
	if p == nil {
		p = &model.LevelPlan{Level: level}
	}
	p.Notes = args[1]
	if err := st.SaveLevelPlan(*p); err != nil {
		return err
	}

	fmt.Printf("  %s notes updated\n", model.LevelTitle(level))
	return nil
}

func runPlanClear(_ *cobra.Command, args []string) error {
	level, err := parseLevel(args[0])
	if err != nil {
		return err
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := st.SaveLevelPlan(model.LevelPlan{Level: level}); err != nil {
		return err
	}
	fmt.Printf("  %s plan cleared\n", model.LevelTitle(level))
	return nil
}
