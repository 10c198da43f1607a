// Package metrics computes aggregates, ratios, and freedom projections
// from monthly report data. Every function is pure and total: divisions
// guard their denominators and substitute zero instead of NaN.
package metrics

import "github.com/finfree-dev/finfree/internal/model"

// Totals holds the named sums derived from one month's figures.
type Totals struct {
	// Income subtotals.
	Earned      float64
	Passive     float64
	Portfolio   float64
	TotalIncome float64

	// Expense subtotals.
	TotalExpenses float64
	Housing       float64
	DebtPayments  float64
	Discretionary float64
	Taxes         float64

	// Asset subtotals. Assets excludes the doodad fields.
	Assets  float64
	Doodads float64
	Liquid  float64

	// Liability subtotals.
	Liabilities      float64
	HighInterestDebt float64
	ConsumerDebt     float64

	// Derived figures.
	BankerNetWorth  float64
	RichDadNetWorth float64
	NetCashFlow     float64
}

// GroupSum returns the arithmetic sum of every field in one report group.
func GroupSum(d model.FinancialData, g model.Group) float64 {
	var sum float64
	for _, name := range model.FieldNames(g) {
		v, _ := d.Field(g, name)
		sum += v
	}
	return sum
}

// Aggregate computes all category subtotals and derived figures for one
// month. Doodads count as assets for the banker net worth only; the
// rich-dad net worth excludes them.
func Aggregate(d model.FinancialData) Totals {
	var t Totals

	in := d.Income
	t.Earned = in.Earned1 + in.Earned2
	t.Passive = in.RealEstate + in.Business
	t.Portfolio = in.Interest + in.Dividends + in.Other
	t.TotalIncome = t.Earned + t.Passive + t.Portfolio

	ex := d.Expenses
	t.TotalExpenses = GroupSum(d, model.GroupExpenses)
	t.Housing = ex.HomeLoan + ex.HomeInsurance + ex.Utilities
	t.DebtPayments = ex.HomeLoan + ex.CarLoan + ex.CreditCards + ex.StudentLoan
	t.Discretionary = ex.Entertainment + ex.Clothing + ex.Other
	t.Taxes = ex.Taxes

	as := d.Assets
	t.Doodads = as.DoodadsHome + as.DoodadsCar + as.DoodadsOther
	t.Assets = GroupSum(d, model.GroupAssets) - t.Doodads
	t.Liquid = as.BankAccounts + as.Stocks

	li := d.Liabilities
	t.Liabilities = GroupSum(d, model.GroupLiabilities)
	t.HighInterestDebt = li.CreditCards + li.PersonalLoans
	t.ConsumerDebt = li.CreditCards + li.CarLoans

	t.BankerNetWorth = t.Assets + t.Doodads - t.Liabilities
	t.RichDadNetWorth = t.Assets - t.Liabilities
	t.NetCashFlow = t.TotalIncome - t.TotalExpenses

	return t
}

// pct returns num/den x 100, or 0 when den is not strictly positive.
func pct(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den * 100
}

// ratio returns num/den, or 0 when den is not strictly positive.
func ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// clamp01 limits v to the [0, 1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clamp100 limits v to the [0, 100] range.
func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
