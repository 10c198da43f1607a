package metrics

import (
	"math"
	"testing"

	"github.com/finfree-dev/finfree/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAggregate_IncomeSubtotals(t *testing.T) {
	d := model.FinancialData{
		Income: model.Income{
			Earned1:    5000,
			RealEstate: 500,
			Interest:   50,
		},
	}

	got := Aggregate(d)
	if got.Earned != 5000 {
		t.Fatalf("Earned = %.2f, want 5000", got.Earned)
	}
	if got.Passive != 500 {
		t.Fatalf("Passive = %.2f, want 500", got.Passive)
	}
	if got.Portfolio != 50 {
		t.Fatalf("Portfolio = %.2f, want 50", got.Portfolio)
	}
	if got.TotalIncome != 5550 {
		t.Fatalf("TotalIncome = %.2f, want 5550", got.TotalIncome)
	}
}

func TestAggregate_SumOfPartsEqualsTotal(t *testing.T) {
	d := model.FinancialData{
		Income: model.Income{
			Earned1: 3200, Earned2: 800,
			RealEstate: 650, Business: 150,
			Interest: 20, Dividends: 85, Other: 45,
		},
	}

	got := Aggregate(d)
	if want := got.Earned + got.Passive + got.Portfolio; got.TotalIncome != want {
		t.Fatalf("TotalIncome = %.2f, want sum of subtotals %.2f", got.TotalIncome, want)
	}
	if want := GroupSum(d, model.GroupIncome); got.TotalIncome != want {
		t.Fatalf("TotalIncome = %.2f, want group sum %.2f", got.TotalIncome, want)
	}
}

func TestAggregate_NetCashFlow(t *testing.T) {
	d := model.FinancialData{
		Income: model.Income{Earned1: 5000, RealEstate: 500, Interest: 50},
		Expenses: model.Expenses{
			Taxes: 1200, HomeLoan: 1500, Groceries: 600,
			Utilities: 200, Fuel: 150, Entertainment: 350,
		},
	}

	got := Aggregate(d)
	if got.TotalExpenses != 4000 {
		t.Fatalf("TotalExpenses = %.2f, want 4000", got.TotalExpenses)
	}
	if got.NetCashFlow != 1550 {
		t.Fatalf("NetCashFlow = %.2f, want 1550", got.NetCashFlow)
	}
}

func TestAggregate_NetWorthDefinitions(t *testing.T) {
	d := model.FinancialData{
		Assets:      model.Assets{BankAccounts: 10000, Stocks: 5000},
		Liabilities: model.Liabilities{CreditCards: 2000},
	}

	got := Aggregate(d)
	if got.RichDadNetWorth != 13000 {
		t.Fatalf("RichDadNetWorth = %.2f, want 13000", got.RichDadNetWorth)
	}
	// With no doodads the two definitions coincide.
	if got.BankerNetWorth != 13000 {
		t.Fatalf("BankerNetWorth = %.2f, want 13000", got.BankerNetWorth)
	}
}

func TestAggregate_DoodadsOnlyCountForBanker(t *testing.T) {
	d := model.FinancialData{
		Assets: model.Assets{
			BankAccounts: 20000,
			DoodadsHome:  300000,
			DoodadsCar:   15000,
		},
		Liabilities: model.Liabilities{HomeMortgage: 250000},
	}

	got := Aggregate(d)
	if got.Assets != 20000 {
		t.Fatalf("Assets = %.2f, want 20000 (doodads excluded)", got.Assets)
	}
	if got.Doodads != 315000 {
		t.Fatalf("Doodads = %.2f, want 315000", got.Doodads)
	}
	if got.BankerNetWorth != 85000 {
		t.Fatalf("BankerNetWorth = %.2f, want 85000", got.BankerNetWorth)
	}
	if got.RichDadNetWorth != -230000 {
		t.Fatalf("RichDadNetWorth = %.2f, want -230000", got.RichDadNetWorth)
	}
}

func TestAggregate_ZeroValueReportIsAllZeros(t *testing.T) {
	got := Aggregate(model.FinancialData{})
	if got.TotalIncome != 0 || got.TotalExpenses != 0 || got.NetCashFlow != 0 {
		t.Fatalf("zero report produced nonzero totals: %+v", got)
	}
}

func TestFieldRoundTrip(t *testing.T) {
	var d model.FinancialData
	if !d.SetField(model.GroupIncome, "earned1", 5000) {
		t.Fatal("SetField rejected known field earned1")
	}
	v, ok := d.Field(model.GroupIncome, "earned1")
	if !ok || v != 5000 {
		t.Fatalf("Field(earned1) = %.2f, %v, want 5000, true", v, ok)
	}
	if d.SetField(model.GroupIncome, "bogus", 1) {
		t.Fatal("SetField accepted unknown field")
	}
}

func TestGroupSum_CoversEveryField(t *testing.T) {
	var d model.FinancialData
	for _, g := range model.Groups {
		for _, name := range model.FieldNames(g) {
			if !d.SetField(g, name, 1) {
				t.Fatalf("SetField(%s.%s) rejected", g, name)
			}
		}
		want := float64(len(model.FieldNames(g)))
		if got := GroupSum(d, g); !almostEqual(got, want) {
			t.Fatalf("GroupSum(%s) = %.2f, want %.2f", g, got, want)
		}
	}
}
