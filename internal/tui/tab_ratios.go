package tui

import (
	"fmt"
	"strings"

	"github.com/finfree-dev/finfree/internal/cli"
	"github.com/finfree-dev/finfree/internal/tui/components"
	"github.com/finfree-dev/finfree/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderRatiosTab(cw int) string {
	if len(a.reports) == 0 {
		return a.noDataCard(cw)
	}
	t := theme.Active

	goodStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface).Bold(true)
	badStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	targetStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	for i, row := range a.ratios.Rows() {
		if i > 0 {
			b.WriteString("\n")
		}
		verdict := badStyle.Render("●")
		if row.Good {
			verdict = goodStyle.Render("●")
		}
		value := cli.FormatMonths(row.Value)
		if row.IsPercent {
			value = cli.FormatPercent(row.Value)
		}
		b.WriteString(verdict)
		b.WriteString(nameStyle.Render(fmt.Sprintf(" %-18s", row.Name)))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%12s", value)))
		b.WriteString(targetStyle.Render(fmt.Sprintf("   target %s", row.Target)))
	}

	table := components.ContentCard("Rich Dad Ratios", b.String(), cw)

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	notes := components.ContentCard("Reading the Numbers",
		dimStyle.Render("Cash flow kept is income surviving the month; passive income is\n"+
			"rent, business, and portfolio income against the total. The wealth\n"+
			"ratio counts how many months your liquid assets cover."),
		cw)

	return lipgloss.JoinVertical(lipgloss.Left, table, notes)
}
