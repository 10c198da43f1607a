package metrics

import (
	"math"
	"time"

	"github.com/finfree-dev/finfree/internal/model"
)

// defaultWithdrawalRate is the fallback divisor when the profile carries
// no usable withdrawal rate and the advanced mode has no usable yield.
const defaultWithdrawalRate = 0.04

// LevelProjection is the freedom-number math for one level plan.
type LevelProjection struct {
	Level          model.LevelKey
	AnnualExpenses float64
	AnnualPassive  float64
	AnnualGap      float64
	TargetAssets   float64
	CurrentAssets  float64
	Progress       float64  // clamped to [0, 1]
	YearsToTarget  *float64 // nil when not computable
}

// ProjectLevel computes the asset target and progress for one level plan.
// Current assets are the unconditional sum of every bucket; they are not
// level-specific.
func ProjectLevel(plan model.LevelPlan, prof model.Profile, buckets []model.AssetBucket, now time.Time) LevelProjection {
	p := LevelProjection{Level: plan.Level}

	for _, e := range plan.Expenses {
		p.AnnualExpenses += e.Monthly
	}
	p.AnnualExpenses *= 12

	for _, pi := range plan.PassiveIncome {
		p.AnnualPassive += pi.Annual
	}

	p.AnnualGap = p.AnnualExpenses - p.AnnualPassive
	if p.AnnualGap < 0 {
		p.AnnualGap = 0
	}

	divisor := targetDivisor(prof, buckets, now)
	p.TargetAssets = p.AnnualGap / divisor

	p.CurrentAssets = TotalBucketValue(buckets, now)
	if p.TargetAssets > 0 {
		p.Progress = clamp01(p.CurrentAssets / p.TargetAssets)
	}

	p.YearsToTarget = yearsToTarget(prof, p.CurrentAssets, p.TargetAssets)

	return p
}

// ProjectAll runs the projector over every level plan.
func ProjectAll(plans []model.LevelPlan, prof model.Profile, buckets []model.AssetBucket, now time.Time) []LevelProjection {
	out := make([]LevelProjection, 0, len(plans))
	for _, plan := range plans {
		out = append(out, ProjectLevel(plan, prof, buckets, now))
	}
	return out
}

// targetDivisor picks the yield fraction that turns an annual gap into an
// asset target. Simple mode uses the flat withdrawal rate; advanced mode
// uses the balance-weighted bucket yield, falling back to 4%.
func targetDivisor(prof model.Profile, buckets []model.AssetBucket, now time.Time) float64 {
	if prof.Mode == model.ModeAdvanced {
		if wy, ok := WeightedYield(buckets, now); ok {
			return wy
		}
		return defaultWithdrawalRate
	}
	if prof.WithdrawalRatePct > 0 {
		return prof.WithdrawalRatePct / 100
	}
	return defaultWithdrawalRate
}

// yearsToTarget solves the continuous-contribution growth equation for
// time. Only computable with a positive contribution, a positive expected
// return, and assets still short of the target; otherwise nil.
func yearsToTarget(prof model.Profile, current, target float64) *float64 {
	c := prof.MonthlyContribution
	r := prof.ExpectedReturnPct / 100
	if c <= 0 || r <= 0 || target <= 0 || current >= target {
		return nil
	}

	years := math.Abs(math.Log((c+r*current)/(c+r*target))) / (12 * math.Log(1+r/12))
	if math.IsNaN(years) || math.IsInf(years, 0) {
		return nil
	}
	return &years
}

// flatMultiples maps each level to its passive-income target as a
// multiple of total monthly expenses. This simpler tracker strategy is
// independent of the itemized level plans and is never reconciled with
// them.
var flatMultiples = map[model.LevelKey]float64{
	model.LevelSecurity:        0.3,
	model.LevelVitality:        0.5,
	model.LevelIndependence:    1.0,
	model.LevelFreedom:         1.5,
	model.LevelAbsoluteFreedom: 2.5,
}

// FlatTarget is one level's target under the flat-multiple strategy.
type FlatTarget struct {
	Level         model.LevelKey
	Multiple      float64
	MonthlyTarget float64
	Progress      float64 // clamped to [0, 1]
}

// FlatTargets derives per-level monthly passive-income targets as fixed
// multiples of total monthly expenses.
func FlatTargets(totalMonthlyExpenses, monthlyPassiveIncome float64) []FlatTarget {
	out := make([]FlatTarget, 0, len(model.Levels))
	for _, lvl := range model.Levels {
		mult := flatMultiples[lvl]
		ft := FlatTarget{
			Level:         lvl,
			Multiple:      mult,
			MonthlyTarget: totalMonthlyExpenses * mult,
		}
		if ft.MonthlyTarget > 0 {
			ft.Progress = clamp01(monthlyPassiveIncome / ft.MonthlyTarget)
		}
		out = append(out, ft)
	}
	return out
}
