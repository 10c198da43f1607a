// Package tui implements the interactive dashboard.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/finfree-dev/finfree/internal/cli"
	"github.com/finfree-dev/finfree/internal/config"
	"github.com/finfree-dev/finfree/internal/metrics"
	"github.com/finfree-dev/finfree/internal/model"
	"github.com/finfree-dev/finfree/internal/store"
	"github.com/finfree-dev/finfree/internal/tui/components"
	"github.com/finfree-dev/finfree/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the database read completes. Reports are
// ordered newest first.
type DataLoadedMsg struct {
	Reports  []model.Report
	Buckets  []model.AssetBucket
	Plans    map[model.LevelKey]model.LevelPlan
	Dates    []time.Time
	LoadTime time.Duration
	Err      error
}

// App is the root Bubble Tea model.
type App struct {
	cfg    config.Config
	masked bool

	// Data
	reports  []model.Report
	buckets  []model.AssetBucket
	plans    map[model.LevelKey]model.LevelPlan
	dates    []time.Time
	loaded   bool
	loadErr  error
	loadTime time.Duration

	// Pre-computed from the latest report
	totals      metrics.Totals
	prevTotals  metrics.Totals
	hasPrev     bool
	ratios      metrics.Ratios
	milestones  []model.Milestone
	changes     []model.Change
	projections []metrics.LevelProjection
	flat        []metrics.FlatTarget
	streaks     model.StreakStats

	// Trend histories, oldest month first
	netWorthHist []float64
	cashFlowHist []float64
	histLabels   []string

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	settings settingsState

	spinner spinner.Model
}

const (
	minTerminalWidth = 80
	compactWidth     = 110
	maxContentWidth  = 160
	minContentHeight = 5

	historyMonths = 24 // reports loaded for trend charts
)

// NewApp creates a new dashboard model.
func NewApp(cfg config.Config, masked bool) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		cfg:     cfg,
		masked:  masked,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion, // Enable mouse support
		loadDataCmd(a.cfg),
		a.spinner.Tick,
	)
}

// loadDataCmd reads everything the dashboard shows in one pass.
func loadDataCmd(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()

		st, err := store.Open(config.DBPath(cfg))
		if err != nil {
			return DataLoadedMsg{Err: err, LoadTime: time.Since(start)}
		}
		defer func() { _ = st.Close() }()

		reports, err := st.LatestReports(historyMonths)
		if err != nil {
			return DataLoadedMsg{Err: err, LoadTime: time.Since(start)}
		}
		buckets, err := st.ListBuckets()
		if err != nil {
			return DataLoadedMsg{Err: err, LoadTime: time.Since(start)}
		}
		plans, err := st.ListLevelPlans()
		if err != nil {
			return DataLoadedMsg{Err: err, LoadTime: time.Since(start)}
		}
		dates, err := st.ReportDates()
		if err != nil {
			return DataLoadedMsg{Err: err, LoadTime: time.Since(start)}
		}

		return DataLoadedMsg{
			Reports:  reports,
			Buckets:  buckets,
			Plans:    plans,
			Dates:    dates,
			LoadTime: time.Since(start),
		}
	}
}

func (a *App) recompute() {
	now := time.Now()

	if len(a.reports) > 0 {
		latest := a.reports[0].Data
		a.totals = metrics.Aggregate(latest)
		a.ratios = metrics.ComputeRatios(a.totals)
		a.milestones = metrics.Milestones(latest, a.totals.TotalIncome*12)
		a.flat = metrics.FlatTargets(a.totals.TotalExpenses, a.totals.Passive+a.totals.Portfolio)
	}

	a.hasPrev = len(a.reports) > 1
	if a.hasPrev {
		a.prevTotals = metrics.Aggregate(a.reports[1].Data)
		a.changes = metrics.Compare(a.reports[0].Data, a.reports[1].Data)
	} else {
		a.changes = nil
	}

	// Level plans in canonical order; levels without a plan are skipped.
	ordered := make([]model.LevelPlan, 0, len(model.Levels))
	for _, lvl := range model.Levels {
		if p, ok := a.plans[lvl]; ok {
			ordered = append(ordered, p)
		}
	}
	a.projections = metrics.ProjectAll(ordered, config.Profile(a.cfg), a.buckets, now)
	a.streaks = metrics.Streaks(a.dates, now)

	a.netWorthHist = a.netWorthHist[:0]
	a.cashFlowHist = a.cashFlowHist[:0]
	a.histLabels = a.histLabels[:0]
	for i := len(a.reports) - 1; i >= 0; i-- {
		t := metrics.Aggregate(a.reports[i].Data)
		a.netWorthHist = append(a.netWorthHist, t.RichDadNetWorth)
		a.cashFlowHist = append(a.cashFlowHist, t.NetCashFlow)
		a.histLabels = append(a.histLabels, a.reports[i].Month.Format("Jan"))
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		a.loadErr = msg.Err
		a.loadTime = msg.LoadTime
		if msg.Err == nil {
			a.reports = msg.Reports
			a.buckets = msg.Buckets
			a.plans = msg.Plans
			a.dates = msg.Dates
			a.recompute()
		}
		return a, nil

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.MouseMsg:
		if !a.loaded || a.showHelp {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			if key == "q" {
				return a, tea.Quit
			}
			return a, nil
		}

		// Settings tab owns all keys while editing (text input)
		if a.activeTab == settingsTabIdx && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "left", "h":
			a.activeTab--
			if a.activeTab < 0 {
				a.activeTab = len(components.Tabs) - 1
			}
			return a, nil
		case "right", "l", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "M":
			a.masked = !a.masked
			return a, nil
		case "R":
			return a, loadDataCmd(a.cfg)
		}

		if a.activeTab == settingsTabIdx {
			if handled, m, cmd := a.updateSettingsKeys(key); handled {
				return m, cmd
			}
		}

		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil
	}

	return a, nil
}

func (a App) contentWidth() int {
	if a.width > maxContentWidth {
		return maxContentWidth
	}
	return a.width
}

func (a App) isCompactLayout() bool {
	return a.width < compactWidth
}

// money formats a dollar amount honoring the mask toggle.
func (a App) money(v float64) string {
	return cli.Money(v, a.masked)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  finfree needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active
	w := a.width
	h := a.height

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	spinnerStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ finfree"))
	b.WriteString(subtitleStyle.Render(" · Financial Freedom Tracker"))
	b.WriteString("\n\n")
	b.WriteString(spinnerStyle.Render(a.spinner.View()))
	b.WriteString(subtitleStyle.Render(" Reading reports..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o r f m x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"M", "Toggle masked amounts"},
		{"R", "Reload from database"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Render header (tab bar + month pill)
	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	pillAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	pillStr := pillStyle.Render(" ")
	if len(a.reports) > 0 {
		pillStr += pillAccentStyle.Render(model.MonthKey(a.reports[0].Month))
		if a.streaks.Current > 0 {
			pillStr += pillStyle.Render(" │ ") +
				pillAccentStyle.Render(fmt.Sprintf("%d-month streak", a.streaks.Current))
		}
	} else {
		pillStr += pillAccentStyle.Render("no reports")
	}
	if a.masked {
		pillStr += pillStyle.Render(" │ ") + pillAccentStyle.Render("masked")
	}
	pillStr += pillStyle.Render(" ")

	pillRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		pillRowStyle.Render(pillStr)

	// 2. Render status bar
	info := fmt.Sprintf("Loaded in %.1fs", a.loadTime.Seconds())
	statusBar := components.RenderStatusBar(w, info)

	// 3. Calculate content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Render tab content
	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderRatiosTab(cw)
	case 2:
		content = a.renderFreedomTab(cw)
	case 3:
		content = a.renderMilestonesTab(cw)
	case 4:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background (fixes gaps between cards)
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content with background fill (handles centering when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	// 8. Stack vertically
	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	// 9. Ensure entire terminal is filled with background
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// noDataCard is the shared empty state for tabs that need a report.
func (a App) noDataCard(cw int) string {
	body := "No monthly reports yet.\n\n" +
		"Record your first figures:\n" +
		"  finfree report set income.earned1 5000"
	return components.ContentCard("Getting Started", body, cw)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space before the first tab
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Two separator columns between tabs.
		if i < len(components.Tabs)-1 {
			pos += 2
		}
	}
	return -1
}
