package model

// MilestoneCategory groups milestones for display.
type MilestoneCategory string

const (
	CategoryLiquidity MilestoneCategory = "liquidity"
	CategoryDebt      MilestoneCategory = "debt"
	CategoryWealth    MilestoneCategory = "wealth"
)

// Milestone is a computed progress record. Progress is always in [0,100].
type Milestone struct {
	ID       string
	Category MilestoneCategory
	Title    string
	Progress float64
	Message  string
}

// Achieved reports whether the milestone has been fully reached.
func (m Milestone) Achieved() bool {
	return m.Progress >= 100
}

// StreakStats holds consecutive-month reporting streaks.
type StreakStats struct {
	Current int // unbroken months ending at the current month
	Longest int // longest run anywhere in the history
}

// ChangeKind classifies a period-over-period delta.
type ChangeKind string

const (
	ChangeWin  ChangeKind = "win"
	ChangeRisk ChangeKind = "risk"
)

// Change is one qualitative win or risk derived from two successive reports.
type Change struct {
	Kind    ChangeKind
	Metric  string
	Message string
}
