package metrics

import (
	"testing"

	"github.com/finfree-dev/finfree/internal/model"
)

func milestoneByID(t *testing.T, ms []model.Milestone, id string) model.Milestone {
	t.Helper()
	for _, m := range ms {
		if m.ID == id {
			return m
		}
	}
	t.Fatalf("milestone %q not found", id)
	return model.Milestone{}
}

func TestMilestones_ProgressAlwaysInRange(t *testing.T) {
	// Deliberately extreme figures to push every formula past its bounds.
	d := model.FinancialData{
		Income:   model.Income{Earned1: 100},
		Expenses: model.Expenses{HomeLoan: 5000, CreditCards: 3000, Groceries: 50},
		Assets:   model.Assets{BankAccounts: 10_000_000},
		Liabilities: model.Liabilities{
			CreditCards: 50000, PersonalLoans: 20000, CarLoans: 8000,
		},
	}

	for _, m := range Milestones(d, 1200) {
		if m.Progress < 0 || m.Progress > 100 {
			t.Fatalf("%s progress = %.2f, want within [0,100]", m.ID, m.Progress)
		}
	}
}

func TestMilestones_ZeroDebtIsExactlyHundred(t *testing.T) {
	d := model.FinancialData{
		Income: model.Income{Earned1: 5000},
		Assets: model.Assets{BankAccounts: 1000},
	}

	ms := Milestones(d, 60000)
	for _, id := range []string{"debt-high-interest", "debt-consumer", "debt-to-income"} {
		if got := milestoneByID(t, ms, id).Progress; got != 100 {
			t.Fatalf("%s progress = %.2f with zero debt, want exactly 100", id, got)
		}
	}
}

func TestMilestones_NonzeroDebtIsZero(t *testing.T) {
	d := model.FinancialData{
		Liabilities: model.Liabilities{CreditCards: 0.01},
	}

	ms := Milestones(d, 0)
	// No partial credit on the debt-free milestones.
	if got := milestoneByID(t, ms, "debt-high-interest").Progress; got != 0 {
		t.Fatalf("debt-high-interest progress = %.2f, want 0", got)
	}
	if got := milestoneByID(t, ms, "debt-consumer").Progress; got != 0 {
		t.Fatalf("debt-consumer progress = %.2f, want 0", got)
	}
}

func TestMilestones_DebtToIncomeFalloff(t *testing.T) {
	// Debt payments at 30% of income: 10pp over the line, 5 points per pp.
	d := model.FinancialData{
		Income:   model.Income{Earned1: 10000},
		Expenses: model.Expenses{HomeLoan: 3000},
	}

	if got := milestoneByID(t, Milestones(d, 120000), "debt-to-income").Progress; got != 50 {
		t.Fatalf("debt-to-income progress = %.2f, want 50", got)
	}

	// At or under 20% is full credit.
	d.Expenses.HomeLoan = 2000
	if got := milestoneByID(t, Milestones(d, 120000), "debt-to-income").Progress; got != 100 {
		t.Fatalf("debt-to-income progress = %.2f at 20%%, want 100", got)
	}
}

func TestMilestones_Liquidity(t *testing.T) {
	d := model.FinancialData{
		Expenses: model.Expenses{Groceries: 1000, Utilities: 1000},
		Assets:   model.Assets{BankAccounts: 6000},
	}

	ms := Milestones(d, 0)
	// 3 months covered: 1mo and 3mo done, 6mo halfway.
	if got := milestoneByID(t, ms, "liquid-1mo").Progress; got != 100 {
		t.Fatalf("liquid-1mo progress = %.2f, want 100", got)
	}
	if got := milestoneByID(t, ms, "liquid-3mo").Progress; got != 100 {
		t.Fatalf("liquid-3mo progress = %.2f, want 100", got)
	}
	if got := milestoneByID(t, ms, "liquid-6mo").Progress; got != 50 {
		t.Fatalf("liquid-6mo progress = %.2f, want 50", got)
	}
}

func TestMilestones_NetWorthThresholds(t *testing.T) {
	d := model.FinancialData{
		Assets: model.Assets{BankAccounts: 25000},
	}

	ms := Milestones(d, 20000)
	if got := milestoneByID(t, ms, "worth-10k").Progress; got != 100 {
		t.Fatalf("worth-10k progress = %.2f, want 100", got)
	}
	if got := milestoneByID(t, ms, "worth-100k").Progress; got != 25 {
		t.Fatalf("worth-100k progress = %.2f, want 25", got)
	}
	if got := milestoneByID(t, ms, "worth-1x-income").Progress; got != 100 {
		t.Fatalf("worth-1x-income progress = %.2f, want 100", got)
	}
	if got := milestoneByID(t, ms, "worth-5x-income").Progress; got != 25 {
		t.Fatalf("worth-5x-income progress = %.2f, want 25", got)
	}
}

func TestMilestones_NegativeNetWorthClampsToZero(t *testing.T) {
	d := model.FinancialData{
		Liabilities: model.Liabilities{StudentLoans: 80000},
	}

	ms := Milestones(d, 50000)
	for _, id := range []string{"worth-10k", "worth-100k", "worth-1x-income", "worth-5x-income"} {
		if got := milestoneByID(t, ms, id).Progress; got != 0 {
			t.Fatalf("%s progress = %.2f with negative net worth, want 0", id, got)
		}
	}
}

func TestMilestones_MessagesTrackCompletion(t *testing.T) {
	d := model.FinancialData{
		Income: model.Income{Earned1: 5000},
	}

	for _, m := range Milestones(d, 60000) {
		if m.Achieved() && m.Message == "" {
			t.Fatalf("%s achieved but has no message", m.ID)
		}
		if !m.Achieved() && m.Message == "" {
			t.Fatalf("%s pending but has no message", m.ID)
		}
	}
}
