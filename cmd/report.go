package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/finfree-dev/finfree/internal/cli"
	"github.com/finfree-dev/finfree/internal/model"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show or edit the monthly report",
	RunE:  runReportShow,
}

var reportSetCmd = &cobra.Command{
	Use:   "set <group.field> <amount>",
	Short: "Set one report figure, e.g. `finfree report set income.earned1 5000`",
	Args:  cobra.ExactArgs(2),
	RunE:  runReportSet,
}

var reportSourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Manage data source links attached to the report",
	RunE:  runReportSourceList,
}

var reportSourceAddCmd = &cobra.Command{
	Use:   "add <group> <label> <url>",
	Short: "Attach a data source link to a report group",
	Args:  cobra.ExactArgs(3),
	RunE:  runReportSourceAdd,
}

func init() {
	reportSourceCmd.AddCommand(reportSourceAddCmd)
	reportCmd.AddCommand(reportSetCmd)
	reportCmd.AddCommand(reportSourceCmd)
	rootCmd.AddCommand(reportCmd)
}

func runReportShow(_ *cobra.Command, _ []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	key, err := resolveMonth()
	if err != nil {
		return err
	}
	r, err := st.GetReport(key)
	if err != nil {
		return err
	}
	if r == nil {
		fmt.Printf("\n  No report for %s.\n", key)
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("REPORT  %s", key)))
	fmt.Println()

	for _, g := range model.Groups {
		var rows [][]string
		for _, name := range model.FieldNames(g) {
			v, _ := r.Data.Field(g, name)
			if v == 0 {
				continue
			}
			rows = append(rows, []string{name, money(v, cfg)})
		}
		if len(rows) == 0 {
			continue
		}
		table := cli.Table{
			Title:   strings.ToUpper(string(g)),
			Headers: []string{"Field", "Amount"},
			Rows:    rows,
		}
		fmt.Print(cli.RenderTable(table))
		fmt.Println()
	}

	if !r.ArchivedAt.IsZero() {
		fmt.Printf("  Archived %s\n", r.ArchivedAt.Local().Format("2006-01-02"))
	}
	return nil
}

func runReportSet(_ *cobra.Command, args []string) error {
	group, field, err := splitFieldRef(args[0])
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[1])
	}
	if amount < 0 {
		return fmt.Errorf("amounts cannot be negative")
	}

	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	key, err := resolveMonth()
	if err != nil {
		return err
	}
	r, err := st.GetReport(key)
	if err != nil {
		return err
	}
	if r == nil {
		month, _ := model.ParseMonthKey(key)
		r = &model.Report{Month: month}
	}
	if !r.ArchivedAt.IsZero() {
		return fmt.Errorf("month %s is archived; edit the current month instead", key)
	}

	if !r.Data.SetField(group, field, amount) {
		return fmt.Errorf("unknown field %s.%s", group, field)
	}
	r.UpdatedAt = time.Now()
	if err := st.SaveReport(*r); err != nil {
		return err
	}

	fmt.Printf("  %s %s.%s = %s\n", key, group, field, money(amount, cfg))
	return nil
}

func runReportSourceList(_ *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	key, err := resolveMonth()
	if err != nil {
		return err
	}
	r, err := st.GetReport(key)
	if err != nil {
		return err
	}
	if r == nil || len(r.Sources) == 0 {
		fmt.Printf("\n  No sources attached to %s.\n", key)
		return nil
	}

	var rows [][]string
	for _, s := range r.Sources {
		rows = append(rows, []string{string(s.Group), s.Label, s.URL})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("SOURCES  %s", key),
		Headers: []string{"Group", "Label", "URL"},
		Rows:    rows,
	}))
	return nil
}

func runReportSourceAdd(_ *cobra.Command, args []string) error {
	group := model.Group(args[0])
	if model.FieldNames(group) == nil {
		return fmt.Errorf("unknown group %q (income, expenses, assets, liabilities)", args[0])
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	key, err := resolveMonth()
	if err != nil {
		return err
	}
	r, err := st.GetReport(key)
	if err != nil {
		return err
	}
	if r == nil {
		month, _ := model.ParseMonthKey(key)
		r = &model.Report{Month: month}
	}
	if !r.ArchivedAt.IsZero() {
		return fmt.Errorf("month %s is archived; edit the current month instead", key)
	}

	r.Sources = append(r.Sources, model.DataSource{Group: group, Label: args[1], URL: args[2]})
	r.UpdatedAt = time.Now()
	if err := st.SaveReport(*r); err != nil {
		return err
	}

	fmt.Printf("  Attached %q to %s/%s\n", args[1], key, group)
	return nil
}

// splitFieldRef parses a "group.field" reference.
func splitFieldRef(ref string) (model.Group, string, error) {
	parts := strings.SplitN(ref, ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid field reference %q, want group.field", ref)
	}
	g := model.Group(parts[0])
	if model.FieldNames(g) == nil {
		return "", "", fmt.Errorf("unknown group %q (income, expenses, assets, liabilities)", parts[0])
	}
	return g, parts[1], nil
}
