package metrics

// Ratio thresholds. The milestone side of the app checks housing against
// 30% while the ratio table uses 33%; both values are intentional and
// must not be unified (see DESIGN.md).
const (
	GoodCashFlowKeptPct  = 50 // above
	GoodPassiveIncomePct = 20 // above
	GoodTaxPct           = 25 // below
	GoodHousingPct       = 33 // below
	GoodDoodadPct        = 10 // below
	GoodReturnOnAssets   = 5  // above
	GoodWealthMonths     = 12 // above
)

// Ratios holds the named financial ratios for one month. Percentages are
// unrounded; display rounding to two decimals happens in the cli package.
type Ratios struct {
	CashFlowKeptPct   float64
	PassiveIncomePct  float64
	TaxPct            float64
	HousingPct        float64
	DoodadPct         float64
	ReturnOnAssetsPct float64
	WealthMonths      float64
}

// ComputeRatios derives every ratio from the month's totals. Each ratio
// yields exactly 0 when its denominator is not strictly positive.
func ComputeRatios(t Totals) Ratios {
	return Ratios{
		CashFlowKeptPct:   pct(t.NetCashFlow, t.TotalIncome),
		PassiveIncomePct:  pct(t.Passive+t.Portfolio, t.TotalIncome),
		TaxPct:            pct(t.Taxes, t.TotalIncome),
		HousingPct:        pct(t.Housing, t.TotalIncome),
		DoodadPct:         pct(t.Doodads, t.Assets+t.Doodads),
		ReturnOnAssetsPct: pct((t.Passive+t.Portfolio)*12, t.Assets),
		WealthMonths:      ratio(t.Assets, t.TotalExpenses),
	}
}

// RatioRow pairs a ratio with its display name and goodness for tables.
type RatioRow struct {
	Name      string
	Value     float64
	IsPercent bool
	Good      bool
	Target    string
}

// Rows returns the ratios in display order with their good/bad verdicts.
func (r Ratios) Rows() []RatioRow {
	return []RatioRow{
		{"Cash Flow Kept", r.CashFlowKeptPct, true, r.CashFlowKeptPct > GoodCashFlowKeptPct, "> 50%"},
		{"Passive Income", r.PassiveIncomePct, true, r.PassiveIncomePct > GoodPassiveIncomePct, "> 20%"},
		{"Taxes", r.TaxPct, true, r.TaxPct < GoodTaxPct, "< 25%"},
		{"Housing", r.HousingPct, true, r.HousingPct < GoodHousingPct, "< 33%"},
		{"Doodads", r.DoodadPct, true, r.DoodadPct < GoodDoodadPct, "< 10%"},
		{"Return on Assets", r.ReturnOnAssetsPct, true, r.ReturnOnAssetsPct > GoodReturnOnAssets, "> 5%"},
		{"Wealth Ratio", r.WealthMonths, false, r.WealthMonths > GoodWealthMonths, "> 12 months"},
	}
}
