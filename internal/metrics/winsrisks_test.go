package metrics

import (
	"strings"
	"testing"

	"github.com/finfree-dev/finfree/internal/model"
)

func changeFor(changes []model.Change, metric string) (model.Change, bool) {
	for _, c := range changes {
		if c.Metric == metric {
			return c, true
		}
	}
	return model.Change{}, false
}

func TestCompare_SavingsRateWin(t *testing.T) {
	prev := model.FinancialData{
		Income:   model.Income{Earned1: 5000},
		Expenses: model.Expenses{Groceries: 4000},
	}
	cur := prev
	cur.Expenses.Groceries = 3500 // savings rate 20% -> 30%

	c, ok := changeFor(Compare(cur, prev), "savings-rate")
	if !ok {
		t.Fatal("no savings-rate change reported")
	}
	if c.Kind != model.ChangeWin {
		t.Fatalf("savings-rate kind = %s, want win", c.Kind)
	}
}

func TestCompare_SmallDeltasProduceNothing(t *testing.T) {
	prev := model.FinancialData{
		Income:   model.Income{Earned1: 5000},
		Expenses: model.Expenses{Groceries: 4000, Entertainment: 200},
		Assets:   model.Assets{Stocks: 10000},
	}
	cur := prev
	cur.Expenses.Groceries = 3990     // savings rate moves 0.2pp
	cur.Assets.Stocks = 10200         // +$200, under the $500 line
	cur.Expenses.Entertainment = 250  // +$50, under the $100 line

	if changes := Compare(cur, prev); len(changes) != 0 {
		t.Fatalf("got %d changes for sub-threshold deltas, want 0: %+v", len(changes), changes)
	}
}

func TestCompare_HousingRiskMentionsThirtyPercentLine(t *testing.T) {
	prev := model.FinancialData{
		Income:   model.Income{Earned1: 5000},
		Expenses: model.Expenses{HomeLoan: 1400},
	}
	cur := prev
	cur.Expenses.HomeLoan = 1600 // 28% -> 32% of income

	c, ok := changeFor(Compare(cur, prev), "housing")
	if !ok {
		t.Fatal("no housing change reported")
	}
	if c.Kind != model.ChangeRisk {
		t.Fatalf("housing kind = %s, want risk", c.Kind)
	}
	// Above the milestone side's 30% line, the message calls it out.
	if want := "30%"; !strings.Contains(c.Message, want) {
		t.Fatalf("housing message %q does not mention %s", c.Message, want)
	}
}

func TestCompare_InvestmentAndNetWorth(t *testing.T) {
	prev := model.FinancialData{
		Assets: model.Assets{Stocks: 20000, Retirement: 40000},
	}
	cur := prev
	cur.Assets.Stocks = 21500 // +1500 invested, +1500 net worth

	changes := Compare(cur, prev)

	inv, ok := changeFor(changes, "investments")
	if !ok || inv.Kind != model.ChangeWin {
		t.Fatalf("investments change = %+v, want a win", inv)
	}
	nw, ok := changeFor(changes, "net-worth")
	if !ok || nw.Kind != model.ChangeWin {
		t.Fatalf("net-worth change = %+v, want a win", nw)
	}
}

func TestCompare_DebtShareRisk(t *testing.T) {
	prev := model.FinancialData{
		Income:   model.Income{Earned1: 5000},
		Expenses: model.Expenses{CreditCards: 500},
	}
	cur := prev
	cur.Expenses.CreditCards = 700 // 10% -> 14% of income

	c, ok := changeFor(Compare(cur, prev), "debt-share")
	if !ok || c.Kind != model.ChangeRisk {
		t.Fatalf("debt-share change = %+v, want a risk", c)
	}
}

func TestCompare_DiscretionaryCutIsWin(t *testing.T) {
	prev := model.FinancialData{
		Expenses: model.Expenses{Entertainment: 400, Clothing: 200},
	}
	cur := prev
	cur.Expenses.Entertainment = 150

	c, ok := changeFor(Compare(cur, prev), "discretionary")
	if !ok || c.Kind != model.ChangeWin {
		t.Fatalf("discretionary change = %+v, want a win", c)
	}
}
