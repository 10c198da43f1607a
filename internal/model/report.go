// Package model defines domain types for finfree reports and plans.
package model

import "time"

// Group names the four sections of a monthly report.
type Group string

const (
	GroupIncome      Group = "income"
	GroupExpenses    Group = "expenses"
	GroupAssets      Group = "assets"
	GroupLiabilities Group = "liabilities"
)

// Groups lists all report groups in display order.
var Groups = []Group{GroupIncome, GroupExpenses, GroupAssets, GroupLiabilities}

// Income holds the monthly income fields. All values are dollars per month.
type Income struct {
	Earned1    float64
	Earned2    float64
	RealEstate float64
	Business   float64
	Interest   float64
	Dividends  float64
	Other      float64
}

// Expenses holds the monthly expense fields.
type Expenses struct {
	Taxes         float64
	HomeLoan      float64
	HomeInsurance float64
	Utilities     float64
	Groceries     float64
	CarLoan       float64
	CarInsurance  float64
	Fuel          float64
	Phone         float64
	Childcare     float64
	Clothing      float64
	CreditCards   float64
	StudentLoan   float64
	Entertainment float64
	Other         float64
}

// Assets holds asset balances. The three doodad fields are personal-use
// items (home, car) that only count toward the banker net worth.
type Assets struct {
	BankAccounts float64
	Stocks       float64
	Bonds        float64
	Retirement   float64
	RealEstate   float64
	Business     float64
	Gold         float64
	Other        float64
	DoodadsHome  float64
	DoodadsCar   float64
	DoodadsOther float64
}

// Liabilities holds outstanding debt balances.
type Liabilities struct {
	HomeMortgage  float64
	CarLoans      float64
	CreditCards   float64
	StudentLoans  float64
	PersonalLoans float64
	Other         float64
}

// FinancialData is one month's complete set of figures.
type FinancialData struct {
	Income      Income
	Expenses    Expenses
	Assets      Assets
	Liabilities Liabilities
}

// DataSource is an informational URL attached to a report group.
type DataSource struct {
	Group Group
	Label string
	URL   string
}

// Report is a monthly snapshot: the figures plus their sources.
// Month is always the first day of the calendar month, UTC.
type Report struct {
	Month      time.Time
	Data       FinancialData
	Sources    []DataSource
	ArchivedAt time.Time // zero until the month is closed out
	UpdatedAt  time.Time
}

// MonthKey formats a month as the canonical "2006-01" storage key.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// ParseMonthKey parses a "2006-01" key back into a first-of-month UTC time.
func ParseMonthKey(key string) (time.Time, error) {
	return time.Parse("2006-01", key)
}

// TruncateToMonth returns the first day of t's calendar month, UTC.
func TruncateToMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
