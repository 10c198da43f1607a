package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/finfree-dev/finfree/internal/config"
	"github.com/finfree-dev/finfree/internal/model"
	"github.com/finfree-dev/finfree/internal/tui/components"
	"github.com/finfree-dev/finfree/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const settingsTabIdx = 4

type settingsState struct {
	editing bool
	input   textinput.Model
	status  string
}

func newRateInput(current float64) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "4"
	ti.CharLimit = 6
	ti.Width = 8
	ti.SetValue(strconv.FormatFloat(current, 'f', -1, 64))
	ti.Focus()
	return ti
}

// updateSettingsKeys handles keys specific to the settings tab.
func (a App) updateSettingsKeys(key string) (bool, tea.Model, tea.Cmd) {
	switch key {
	case "t":
		// Cycle to the next theme and persist it.
		cur := 0
		for i, th := range theme.All {
			if th.Name == theme.Active.Name {
				cur = i
				break
			}
		}
		next := theme.All[(cur+1)%len(theme.All)]
		theme.SetActive(next.Name)
		a.cfg.Appearance.Theme = next.Name
		a.settings.status = a.saveConfigStatus("Theme saved")
		return true, a, nil
	case "e":
		a.settings.editing = true
		a.settings.input = newRateInput(a.cfg.Profile.WithdrawalRatePct)
		a.settings.status = ""
		return true, a, textinput.Blink
	case "s":
		mode := model.ModeSimple
		if model.CalcMode(a.cfg.Profile.Mode) == model.ModeSimple {
			mode = model.ModeAdvanced
		}
		a.cfg.Profile.Mode = string(mode)
		a.settings.status = a.saveConfigStatus("Mode saved")
		a.recompute()
		return true, a, nil
	}
	return false, a, nil
}

// updateSettingsInput handles keys while the withdrawal-rate input is open.
func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.settings.editing = false
		a.settings.status = ""
		return a, nil
	case "enter":
		v, err := strconv.ParseFloat(strings.TrimSpace(a.settings.input.Value()), 64)
		if err != nil || v <= 0 {
			a.settings.status = "Enter a rate above zero"
			return a, nil
		}
		a.cfg.Profile.WithdrawalRatePct = v
		a.settings.editing = false
		a.settings.status = a.saveConfigStatus("Withdrawal rate saved")
		a.recompute()
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) saveConfigStatus(ok string) string {
	if err := config.Save(a.cfg); err != nil {
		return fmt.Sprintf("Save failed: %v", err)
	}
	return ok
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	statusStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)

	row := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-22s", label)) + valueStyle.Render(value)
	}

	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}

	general := strings.Join([]string{
		row("Config file", config.Path()),
		row("Data directory", config.DataDir(a.cfg)),
		row("Database", config.DBPath(a.cfg)),
		row("Theme", theme.Active.Name) + dimStyle.Render("  ") + keyStyle.Render("[t]") + dimStyle.Render(" cycle"),
		row("Masked amounts", onOff(a.masked)) + dimStyle.Render("  ") + keyStyle.Render("[M]") + dimStyle.Render(" toggle"),
	}, "\n")

	prof := config.Profile(a.cfg)
	rate := fmt.Sprintf("%.2f%%", prof.WithdrawalRatePct)
	rateRow := row("Withdrawal rate", rate) + dimStyle.Render("  ") + keyStyle.Render("[e]") + dimStyle.Render(" edit")
	if a.settings.editing {
		rateRow = labelStyle.Render(fmt.Sprintf("%-22s", "Withdrawal rate")) +
			a.settings.input.View() +
			dimStyle.Render("  enter to save, esc to cancel")
	}

	profileRows := []string{
		row("Calculation mode", string(prof.Mode)) + dimStyle.Render("  ") + keyStyle.Render("[s]") + dimStyle.Render(" switch"),
		rateRow,
	}
	if prof.ExpectedReturnPct > 0 {
		profileRows = append(profileRows, row("Expected return", fmt.Sprintf("%.2f%%", prof.ExpectedReturnPct)))
	}
	if prof.MonthlyContribution > 0 {
		profileRows = append(profileRows, row("Monthly contribution", a.money(prof.MonthlyContribution)))
	}

	parts := []string{
		components.ContentCard("General", general, cw),
		components.ContentCard("Profile", strings.Join(profileRows, "\n"), cw),
	}
	if a.settings.status != "" {
		parts = append(parts, components.ContentCard("", statusStyle.Render(a.settings.status), cw))
	}
	parts = append(parts, components.ContentCard("",
		dimStyle.Render("The full wizard also sets the quotes API key:\n  finfree setup"), cw))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
