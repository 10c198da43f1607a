package tui

import (
	"testing"
	"time"

	"github.com/finfree-dev/finfree/internal/config"
	"github.com/finfree-dev/finfree/internal/model"
	"github.com/finfree-dev/finfree/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

func testReport(month time.Time) model.Report {
	var d model.FinancialData
	d.Income.Earned1 = 5000
	d.Income.RealEstate = 500
	d.Income.Interest = 50
	d.Expenses.HomeLoan = 1200
	d.Expenses.Taxes = 800
	d.Expenses.Groceries = 400
	d.Assets.BankAccounts = 10000
	d.Assets.Stocks = 3000
	d.Liabilities.CreditCards = 2000
	return model.Report{Month: month, Data: d}
}

func TestRecomputeFromReports(t *testing.T) {
	a := NewApp(config.DefaultConfig(), false)

	aug := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	jul := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	a.reports = []model.Report{testReport(aug), testReport(jul)}
	a.dates = []time.Time{jul, aug}
	a.recompute()

	if a.totals.TotalIncome != 5550 {
		t.Errorf("TotalIncome = %v, want 5550", a.totals.TotalIncome)
	}
	if !a.hasPrev {
		t.Error("hasPrev = false, want true with two reports")
	}
	if len(a.milestones) == 0 {
		t.Error("milestones empty after recompute")
	}
	if len(a.flat) != len(model.Levels) {
		t.Errorf("flat targets = %d, want %d", len(a.flat), len(model.Levels))
	}
	if len(a.netWorthHist) != 2 {
		t.Fatalf("netWorthHist len = %d, want 2", len(a.netWorthHist))
	}
	// History runs oldest to newest.
	if a.histLabels[0] != "Jul" || a.histLabels[1] != "Aug" {
		t.Errorf("histLabels = %v, want [Jul Aug]", a.histLabels)
	}
}

func TestRecomputeSingleReport(t *testing.T) {
	a := NewApp(config.DefaultConfig(), false)
	a.reports = []model.Report{testReport(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))}
	a.recompute()

	if a.hasPrev {
		t.Error("hasPrev = true with one report")
	}
	if len(a.changes) != 0 {
		t.Errorf("changes = %d, want 0 without a previous month", len(a.changes))
	}
}

func TestTabAtX(t *testing.T) {
	a := NewApp(config.DefaultConfig(), false)
	a.activeTab = 0

	// Walk the same hitboxes tabAtX derives and confirm each maps back.
	pos := 1
	for i, tab := range components.Tabs {
		w := components.TabVisualWidth(tab, i == a.activeTab)
		if got := a.tabAtX(pos); got != i {
			t.Errorf("tabAtX(%d) = %d, want %d", pos, got, i)
		}
		if got := a.tabAtX(pos + w - 1); got != i {
			t.Errorf("tabAtX(%d) = %d, want %d", pos+w-1, got, i)
		}
		pos += w + 2
	}

	if got := a.tabAtX(0); got != -1 {
		t.Errorf("tabAtX(0) = %d, want -1 for the leading space", got)
	}
	if got := a.tabAtX(pos + 100); got != -1 {
		t.Errorf("tabAtX far right = %d, want -1", got)
	}
}

func TestSettingsRateValidation(t *testing.T) {
	a := NewApp(config.DefaultConfig(), false)
	a.loaded = true
	a.activeTab = settingsTabIdx
	a.settings.editing = true
	a.settings.input = newRateInput(4)
	a.settings.input.SetValue("not-a-number")

	m, _ := a.updateSettingsInput(tea.KeyMsg{Type: tea.KeyEnter})
	got := m.(App)
	if !got.settings.editing {
		t.Error("editing ended despite invalid rate")
	}
	if got.settings.status == "" {
		t.Error("no status message for invalid rate")
	}
	if got.cfg.Profile.WithdrawalRatePct != config.DefaultConfig().Profile.WithdrawalRatePct {
		t.Errorf("withdrawal rate changed to %v on invalid input", got.cfg.Profile.WithdrawalRatePct)
	}
}

func TestTruncStr(t *testing.T) {
	if got := truncStr("hello", 10); got != "hello" {
		t.Errorf("truncStr short = %q", got)
	}
	if got := truncStr("hello world", 6); got != "hello…" {
		t.Errorf("truncStr long = %q", got)
	}
	if got := truncStr("hello", 0); got != "" {
		t.Errorf("truncStr zero = %q", got)
	}
}

func TestPadAndTruncateHeight(t *testing.T) {
	s := "a\nb\nc"
	if got := truncateHeight(s, 2); got != "a\nb" {
		t.Errorf("truncateHeight = %q", got)
	}
	if got := truncateHeight(s, 5); got != s {
		t.Errorf("truncateHeight no-op = %q", got)
	}
	if got := padHeight("a", 3); got != "a\n\n" {
		t.Errorf("padHeight = %q", got)
	}
	if got := padHeight(s, 2); got != s {
		t.Errorf("padHeight no-op = %q", got)
	}
}
