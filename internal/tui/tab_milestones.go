package tui

import (
	"fmt"
	"strings"

	"github.com/finfree-dev/finfree/internal/model"
	"github.com/finfree-dev/finfree/internal/tui/components"
	"github.com/finfree-dev/finfree/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var milestoneCategories = []struct {
	Category model.MilestoneCategory
	Title    string
}{
	{model.CategoryLiquidity, "Liquidity"},
	{model.CategoryDebt, "Debt"},
	{model.CategoryWealth, "Wealth"},
}

func (a App) renderMilestonesTab(cw int) string {
	if len(a.reports) == 0 {
		return a.noDataCard(cw)
	}

	parts := make([]string, 0, len(milestoneCategories)+1)
	for _, cat := range milestoneCategories {
		body := a.milestoneCategoryBody(cat.Category, cw)
		if body == "" {
			continue
		}
		parts = append(parts, components.ContentCard(cat.Title, body, cw))
	}
	parts = append(parts, components.ContentCard("Reporting Streak", a.streakBody(), cw))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a App) milestoneCategoryBody(cat model.MilestoneCategory, cw int) string {
	t := theme.Active
	doneStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface).Bold(true)
	pendingStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	msgStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	inner := components.CardInnerWidth(cw)
	labelW := 24
	barW := inner - labelW - 6
	if barW > 30 {
		barW = 30
	}
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	for _, m := range a.milestones {
		if m.Category != cat {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		check := pendingStyle.Render("○ ")
		if m.Achieved() {
			check = doneStyle.Render("✓ ")
		}
		b.WriteString(check)
		b.WriteString(components.GoalBar(truncStr(m.Title, labelW), m.Progress/100, labelW, barW))
		b.WriteString("\n")
		b.WriteString(msgStyle.Render("  " + truncStr(m.Message, inner-2)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a App) streakBody() string {
	t := theme.Active
	valueStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	return labelStyle.Render("Current ") +
		valueStyle.Render(fmt.Sprintf("%d", a.streaks.Current)) +
		labelStyle.Render(plural(a.streaks.Current)) +
		labelStyle.Render("  ·  Longest ") +
		valueStyle.Render(fmt.Sprintf("%d", a.streaks.Longest)) +
		labelStyle.Render(plural(a.streaks.Longest))
}

func plural(n int) string {
	if n == 1 {
		return " month"
	}
	return " months"
}
