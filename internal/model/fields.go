package model

// Field names use the camelCase keys that appear in report storage and on
// the CLI (e.g. `finfree report set income.earned1 5000`).

// incomeFields lists income field names in display order.
var incomeFields = []string{
	"earned1", "earned2", "realEstate", "business", "interest", "dividends", "other",
}

// expenseFields lists expense field names in display order.
var expenseFields = []string{
	"taxes", "homeLoan", "homeInsurance", "utilities", "groceries",
	"carLoan", "carInsurance", "fuel", "phone", "childcare",
	"clothing", "creditCards", "studentLoan", "entertainment", "other",
}

// assetFields lists asset field names in display order.
var assetFields = []string{
	"bankAccounts", "stocks", "bonds", "retirement", "realEstate",
	"business", "gold", "other", "doodadsHome", "doodadsCar", "doodadsOther",
}

// liabilityFields lists liability field names in display order.
var liabilityFields = []string{
	"homeMortgage", "carLoans", "creditCards", "studentLoans", "personalLoans", "other",
}

// FieldNames returns the ordered field names for a report group.
func FieldNames(g Group) []string {
	switch g {
	case GroupIncome:
		return incomeFields
	case GroupExpenses:
		return expenseFields
	case GroupAssets:
		return assetFields
	case GroupLiabilities:
		return liabilityFields
	}
	return nil
}

// fieldRef returns a pointer to the named field within the group, or nil
// if the name is unknown.
func (d *FinancialData) fieldRef(g Group, name string) *float64 {
	switch g {
	case GroupIncome:
		i := &d.Income
		switch name {
		case "earned1":
			return &i.Earned1
		case "earned2":
			return &i.Earned2
		case "realEstate":
			return &i.RealEstate
		case "business":
			return &i.Business
		case "interest":
			return &i.Interest
		case "dividends":
			return &i.Dividends
		case "other":
			return &i.Other
		}
	case GroupExpenses:
		e := &d.Expenses
		switch name {
		case "taxes":
			return &e.Taxes
		case "homeLoan":
			return &e.HomeLoan
		case "homeInsurance":
			return &e.HomeInsurance
		case "utilities":
			return &e.Utilities
		case "groceries":
			return &e.Groceries
		case "carLoan":
			return &e.CarLoan
		case "carInsurance":
			return &e.CarInsurance
		case "fuel":
			return &e.Fuel
		case "phone":
			return &e.Phone
		case "childcare":
			return &e.Childcare
		case "clothing":
			return &e.Clothing
		case "creditCards":
			return &e.CreditCards
		case "studentLoan":
			return &e.StudentLoan
		case "entertainment":
			return &e.Entertainment
		case "other":
			return &e.Other
		}
	case GroupAssets:
		a := &d.Assets
		switch name {
		case "bankAccounts":
			return &a.BankAccounts
		case "stocks":
			return &a.Stocks
		case "bonds":
			return &a.Bonds
		case "retirement":
			return &a.Retirement
		case "realEstate":
			return &a.RealEstate
		case "business":
			return &a.Business
		case "gold":
			return &a.Gold
		case "other":
			return &a.Other
		case "doodadsHome":
			return &a.DoodadsHome
		case "doodadsCar":
			return &a.DoodadsCar
		case "doodadsOther":
			return &a.DoodadsOther
		}
	case GroupLiabilities:
		l := &d.Liabilities
		switch name {
		case "homeMortgage":
			return &l.HomeMortgage
		case "carLoans":
			return &l.CarLoans
		case "creditCards":
			return &l.CreditCards
		case "studentLoans":
			return &l.StudentLoans
		case "personalLoans":
			return &l.PersonalLoans
		case "other":
			return &l.Other
		}
	}
	return nil
}

// Field returns the named field's value. Unknown names report false.
func (d *FinancialData) Field(g Group, name string) (float64, bool) {
	ref := d.fieldRef(g, name)
	if ref == nil {
		return 0, false
	}
	return *ref, true
}

// SetField assigns the named field. Unknown names report false.
func (d *FinancialData) SetField(g Group, name string, v float64) bool {
	ref := d.fieldRef(g, name)
	if ref == nil {
		return false
	}
	*ref = v
	return true
}
