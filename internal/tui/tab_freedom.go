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

const freedomLabelW = 16

func (a App) renderFreedomTab(cw int) string {
	targets := components.ContentCard("Asset Targets", a.assetTargetsBody(cw), cw)
	multiples := components.ContentCard("Passive Income Multiples", a.flatTargetsBody(cw), cw)
	return lipgloss.JoinVertical(lipgloss.Left, targets, multiples)
}

func (a App) assetTargetsBody(cw int) string {
	t := theme.Active
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	if len(a.projections) == 0 {
		return dimStyle.Render("No level plans defined yet.\n\n" +
			"Itemize a lifestyle:\n" +
			"  finfree plan add-expense security \"Rent\" 1500")
	}

	inner := components.CardInnerWidth(cw)
	barW := inner - freedomLabelW - 6
	if barW > 40 {
		barW = 40
	}
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	for i, p := range a.projections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(components.GoalBar(truncStr(model.LevelTitle(p.Level), freedomLabelW), p.Progress, freedomLabelW, barW))
		b.WriteString("\n")

		eta := "-"
		switch {
		case p.Progress >= 1:
			eta = "reached"
		case p.YearsToTarget != nil:
			eta = cli.FormatYears(*p.YearsToTarget)
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("%-*s target %s · gap %s/yr · eta %s",
			freedomLabelW, "", a.money(p.TargetAssets), a.money(p.AnnualGap), eta)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a App) flatTargetsBody(cw int) string {
	t := theme.Active
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	if len(a.reports) == 0 {
		return dimStyle.Render("Record a monthly report to size these targets.")
	}

	inner := components.CardInnerWidth(cw)
	barW := inner - freedomLabelW - 6
	if barW > 40 {
		barW = 40
	}
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	for i, ft := range a.flat {
		if i > 0 {
			b.WriteString("\n")
		}
		label := truncStr(model.LevelTitle(ft.Level), freedomLabelW-5) + fmt.Sprintf(" ×%.1f", ft.Multiple)
		b.WriteString(components.GoalBar(label, ft.Progress, freedomLabelW, barW))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%-*s passive income target %s/mo",
			freedomLabelW, "", a.money(ft.MonthlyTarget))))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
