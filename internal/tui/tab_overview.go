package tui

import (
	"fmt"
	"strings"

	"github.com/finfree-dev/finfree/internal/cli"
	"github.com/finfree-dev/finfree/internal/model"
	"github.com/finfree-dev/finfree/internal/tui/components"
	"github.com/finfree-dev/finfree/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	if len(a.reports) == 0 {
		return a.noDataCard(cw)
	}
	cards := []struct{ Label, Value, Delta string }{
		{"Total Income", a.money(a.totals.TotalIncome), a.deltaStr(a.totals.TotalIncome, a.prevTotals.TotalIncome)},
		{"Total Expenses", a.money(a.totals.TotalExpenses), a.deltaStr(a.totals.TotalExpenses, a.prevTotals.TotalExpenses)},
		{"Net Cash Flow", a.money(a.totals.NetCashFlow), a.deltaStr(a.totals.NetCashFlow, a.prevTotals.NetCashFlow)},
		{"Net Worth", a.money(a.totals.RichDadNetWorth), a.deltaStr(a.totals.RichDadNetWorth, a.prevTotals.RichDadNetWorth)},
	}
	top := components.MetricCardRow(cards, cw)

	trend := components.ContentCard("Net Worth Trend", a.trendBody(cw), cw)

	breakdown := a.breakdownCards(cw)

	wins := components.ContentCard("Wins & Risks", a.winsRisksBody(), cw)

	return lipgloss.JoinVertical(lipgloss.Left, top, trend, breakdown, wins)
}

// deltaStr formats a month-over-month delta, empty when masked or when
// there is no previous report to compare against.
func (a App) deltaStr(cur, prev float64) string {
	if !a.hasPrev || a.masked {
		return ""
	}
	return cli.FormatDelta(cur, prev) + " vs prev"
}

func (a App) trendBody(cw int) string {
	t := theme.Active
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	if len(a.netWorthHist) < 2 {
		return dimStyle.Render("Record a few months to see the trend.")
	}

	// Sparklines render magnitudes, so shift negative histories up.
	low := a.netWorthHist[0]
	for _, v := range a.netWorthHist[1:] {
		if v < low {
			low = v
		}
	}
	shifted := make([]float64, len(a.netWorthHist))
	for i, v := range a.netWorthHist {
		shifted[i] = v - low
	}

	first := a.netWorthHist[0]
	last := a.netWorthHist[len(a.netWorthHist)-1]

	var b strings.Builder
	b.WriteString(components.Sparkline(shifted, t.Accent))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s → %s over %d months",
		a.money(first), a.money(last), len(a.netWorthHist))))
	return b.String()
}

func (a App) breakdownCards(cw int) string {
	incomeRows := []components.HBarRow{
		{Label: "Earned", Value: a.totals.Earned, Text: a.money(a.totals.Earned)},
		{Label: "Passive", Value: a.totals.Passive, Text: a.money(a.totals.Passive)},
		{Label: "Portfolio", Value: a.totals.Portfolio, Text: a.money(a.totals.Portfolio)},
	}
	other := a.totals.TotalExpenses - a.totals.Housing - a.totals.DebtPayments -
		a.totals.Discretionary - a.totals.Taxes
	expenseRows := []components.HBarRow{
		{Label: "Housing", Value: a.totals.Housing, Text: a.money(a.totals.Housing)},
		{Label: "Debt", Value: a.totals.DebtPayments, Text: a.money(a.totals.DebtPayments)},
		{Label: "Taxes", Value: a.totals.Taxes, Text: a.money(a.totals.Taxes)},
		{Label: "Doodads", Value: a.totals.Discretionary, Text: a.money(a.totals.Discretionary)},
		{Label: "Other", Value: other, Text: a.money(other)},
	}

	if a.isCompactLayout() {
		income := components.ContentCard("Income",
			components.HBarChart(incomeRows, components.CardInnerWidth(cw), theme.Active.Green), cw)
		expenses := components.ContentCard("Expenses",
			components.HBarChart(expenseRows, components.CardInnerWidth(cw), theme.Active.Orange), cw)
		return lipgloss.JoinVertical(lipgloss.Left, income, expenses)
	}

	widths := components.LayoutRow(cw, 2)
	income := components.ContentCard("Income",
		components.HBarChart(incomeRows, components.CardInnerWidth(widths[0]), theme.Active.Green), widths[0])
	expenses := components.ContentCard("Expenses",
		components.HBarChart(expenseRows, components.CardInnerWidth(widths[1]), theme.Active.Orange), widths[1])
	return components.CardRow([]string{income, expenses})
}

func (a App) winsRisksBody() string {
	t := theme.Active
	winStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	riskStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	if !a.hasPrev {
		return dimStyle.Render("Record a second month to compare against.")
	}
	if len(a.changes) == 0 {
		return dimStyle.Render("No notable changes since last month.")
	}

	var lines []string
	for _, c := range a.changes {
		if c.Kind == model.ChangeWin {
			lines = append(lines, winStyle.Render("▲ "+c.Message))
		} else {
			lines = append(lines, riskStyle.Render("▼ "+c.Message))
		}
	}
	return strings.Join(lines, "\n")
}
