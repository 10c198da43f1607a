package metrics

import (
	"fmt"

	"github.com/finfree-dev/finfree/internal/model"
)

// Milestone thresholds. MilestoneHousingGoodPct deliberately differs from
// GoodHousingPct in ratios.go; both call sites predate this rewrite and
// product has not picked a canonical value.
const (
	MilestoneHousingGoodPct = 30

	dtiGoodPct     = 20
	dtiFalloffRate = 5 // progress points lost per pp above the good line

	netWorthSmall = 10_000
	netWorthLarge = 100_000
)

// Milestones evaluates the fixed milestone list against the latest
// month's totals. Progress is always clamped to [0,100]; debt milestones
// with nothing owed are exactly 100.
func Milestones(latest model.FinancialData, annualIncome float64) []model.Milestone {
	t := Aggregate(latest)

	ms := []model.Milestone{
		liquidityMilestone("liquid-1mo", "1 Month of Expenses Saved", t, 1),
		liquidityMilestone("liquid-3mo", "3 Months of Expenses Saved", t, 3),
		liquidityMilestone("liquid-6mo", "6 Months of Expenses Saved", t, 6),
		debtFreeMilestone("debt-high-interest", "High-Interest Debt Free", t.HighInterestDebt),
		debtFreeMilestone("debt-consumer", "Consumer Debt Free", t.ConsumerDebt),
		dtiMilestone(t),
		netWorthMilestone("worth-10k", "Net Worth $10k", t.RichDadNetWorth, netWorthSmall),
		netWorthMilestone("worth-100k", "Net Worth $100k", t.RichDadNetWorth, netWorthLarge),
		incomeMultipleMilestone("worth-1x-income", "Net Worth 1x Income", t.RichDadNetWorth, annualIncome, 1),
		incomeMultipleMilestone("worth-5x-income", "Net Worth 5x Income", t.RichDadNetWorth, annualIncome, 5),
	}

	return ms
}

func liquidityMilestone(id, title string, t Totals, targetMonths float64) model.Milestone {
	months := ratio(t.Liquid, t.TotalExpenses)
	progress := clamp100(months / targetMonths * 100)
	return model.Milestone{
		ID:       id,
		Category: model.CategoryLiquidity,
		Title:    title,
		Progress: progress,
		Message:  progressMessage(progress, "Emergency fund covered.", fmt.Sprintf("%.1f of %.0f months saved.", months, targetMonths)),
	}
}

func debtFreeMilestone(id, title string, owed float64) model.Milestone {
	// Exact zero owed is full credit; anything else is none.
	progress := 0.0
	if owed == 0 {
		progress = 100
	}
	return model.Milestone{
		ID:       id,
		Category: model.CategoryDebt,
		Title:    title,
		Progress: progress,
		Message:  progressMessage(progress, "Nothing owed.", "Pay it off to unlock this one."),
	}
}

func dtiMilestone(t Totals) model.Milestone {
	var progress float64
	switch {
	case t.DebtPayments == 0:
		progress = 100
	case t.TotalIncome <= 0:
		progress = 0
	default:
		dti := t.DebtPayments / t.TotalIncome * 100
		if dti <= dtiGoodPct {
			progress = 100
		} else {
			progress = clamp100(100 - (dti-dtiGoodPct)*dtiFalloffRate)
		}
	}
	return model.Milestone{
		ID:       "debt-to-income",
		Category: model.CategoryDebt,
		Title:    "Debt Payments Under 20% of Income",
		Progress: progress,
		Message:  progressMessage(progress, "Debt load is manageable.", "Debt payments are eating your income."),
	}
}

func netWorthMilestone(id, title string, netWorth, threshold float64) model.Milestone {
	progress := clamp100(netWorth / threshold * 100)
	return model.Milestone{
		ID:       id,
		Category: model.CategoryWealth,
		Title:    title,
		Progress: progress,
		Message:  progressMessage(progress, "Milestone reached.", fmt.Sprintf("%.0f%% of the way there.", progress)),
	}
}

func incomeMultipleMilestone(id, title string, netWorth, annualIncome, multiple float64) model.Milestone {
	var progress float64
	if annualIncome > 0 {
		progress = clamp100(netWorth / (annualIncome * multiple) * 100)
	}
	return model.Milestone{
		ID:       id,
		Category: model.CategoryWealth,
		Title:    title,
		Progress: progress,
		Message:  progressMessage(progress, "Milestone reached.", fmt.Sprintf("%.0f%% of the way there.", progress)),
	}
}

func progressMessage(progress float64, done, pending string) string {
	if progress >= 100 {
		return done
	}
	return pending
}
