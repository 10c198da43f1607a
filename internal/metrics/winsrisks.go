package metrics

import (
	"fmt"

	"github.com/finfree-dev/finfree/internal/model"
)

// Comparator thresholds. Deltas smaller than these produce neither a win
// nor a risk.
const (
	savingsRateDeltaPP   = 2
	housingDeltaPP       = 2
	investedDeltaDollars = 500
	discretionaryDollars = 100
	netWorthDeltaDollars = 1_000
	debtShareDeltaPP     = 2
)

// Compare derives qualitative wins and risks from two successive monthly
// reports. Order is stable: savings rate, housing, investments,
// discretionary spending, net worth, debt share.
func Compare(latest, previous model.FinancialData) []model.Change {
	cur := Aggregate(latest)
	prev := Aggregate(previous)

	var changes []model.Change
	add := func(kind model.ChangeKind, metric, msg string) {
		changes = append(changes, model.Change{Kind: kind, Metric: metric, Message: msg})
	}

	// Savings rate (share of income kept).
	curSR := pct(cur.NetCashFlow, cur.TotalIncome)
	prevSR := pct(prev.NetCashFlow, prev.TotalIncome)
	switch d := curSR - prevSR; {
	case d >= savingsRateDeltaPP:
		add(model.ChangeWin, "savings-rate", fmt.Sprintf("Savings rate up %.1f points to %.1f%%.", d, curSR))
	case d <= -savingsRateDeltaPP:
		add(model.ChangeRisk, "savings-rate", fmt.Sprintf("Savings rate down %.1f points to %.1f%%.", -d, curSR))
	}

	// Housing share of income, phrased against the 30% line.
	curHousing := pct(cur.Housing, cur.TotalIncome)
	prevHousing := pct(prev.Housing, prev.TotalIncome)
	switch d := curHousing - prevHousing; {
	case d <= -housingDeltaPP:
		add(model.ChangeWin, "housing", fmt.Sprintf("Housing costs down to %.1f%% of income.", curHousing))
	case d >= housingDeltaPP:
		msg := fmt.Sprintf("Housing costs up to %.1f%% of income.", curHousing)
		if curHousing >= MilestoneHousingGoodPct {
			msg = fmt.Sprintf("Housing costs at %.1f%% of income, above the %d%% line.", curHousing, MilestoneHousingGoodPct)
		}
		add(model.ChangeRisk, "housing", msg)
	}

	// Invested assets.
	curInvested := latest.Assets.Stocks + latest.Assets.Bonds + latest.Assets.Retirement
	prevInvested := previous.Assets.Stocks + previous.Assets.Bonds + previous.Assets.Retirement
	switch d := curInvested - prevInvested; {
	case d >= investedDeltaDollars:
		add(model.ChangeWin, "investments", fmt.Sprintf("Investments grew by $%.0f.", d))
	case d <= -investedDeltaDollars:
		add(model.ChangeRisk, "investments", fmt.Sprintf("Investments shrank by $%.0f.", -d))
	}

	// Discretionary spending.
	switch d := cur.Discretionary - prev.Discretionary; {
	case d <= -discretionaryDollars:
		add(model.ChangeWin, "discretionary", fmt.Sprintf("Discretionary spending cut by $%.0f.", -d))
	case d >= discretionaryDollars:
		add(model.ChangeRisk, "discretionary", fmt.Sprintf("Discretionary spending up $%.0f.", d))
	}

	// Net worth (rich-dad definition).
	switch d := cur.RichDadNetWorth - prev.RichDadNetWorth; {
	case d >= netWorthDeltaDollars:
		add(model.ChangeWin, "net-worth", fmt.Sprintf("Net worth up $%.0f.", d))
	case d <= -netWorthDeltaDollars:
		add(model.ChangeRisk, "net-worth", fmt.Sprintf("Net worth down $%.0f.", -d))
	}

	// Debt payment share of income.
	curDebt := pct(cur.DebtPayments, cur.TotalIncome)
	prevDebt := pct(prev.DebtPayments, prev.TotalIncome)
	switch d := curDebt - prevDebt; {
	case d <= -debtShareDeltaPP:
		add(model.ChangeWin, "debt-share", fmt.Sprintf("Debt payments down to %.1f%% of income.", curDebt))
	case d >= debtShareDeltaPP:
		add(model.ChangeRisk, "debt-share", fmt.Sprintf("Debt payments up to %.1f%% of income.", curDebt))
	}

	return changes
}
