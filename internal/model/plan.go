package model

// LevelKey identifies one of the five freedom levels.
type LevelKey string

const (
	LevelSecurity        LevelKey = "security"
	LevelVitality        LevelKey = "vitality"
	LevelIndependence    LevelKey = "independence"
	LevelFreedom         LevelKey = "freedom"
	LevelAbsoluteFreedom LevelKey = "absoluteFreedom"
)

// Levels lists the freedom levels in ascending order.
var Levels = []LevelKey{
	LevelSecurity,
	LevelVitality,
	LevelIndependence,
	LevelFreedom,
	LevelAbsoluteFreedom,
}

// LevelTitle returns a display name for a level key.
func LevelTitle(k LevelKey) string {
	switch k {
	case LevelSecurity:
		return "Security"
	case LevelVitality:
		return "Vitality"
	case LevelIndependence:
		return "Independence"
	case LevelFreedom:
		return "Freedom"
	case LevelAbsoluteFreedom:
		return "Absolute Freedom"
	}
	return string(k)
}

// ExpenseItem is one labeled monthly expense line in a level plan.
// Labels need not be unique; list order is insertion order.
type ExpenseItem struct {
	Label   string
	Monthly float64
}

// PassiveItem is one labeled annual passive-income line in a level plan.
type PassiveItem struct {
	Label  string
	Annual float64
}

// LevelPlan itemizes the lifestyle a freedom level should fund.
type LevelPlan struct {
	Level         LevelKey
	Expenses      []ExpenseItem
	PassiveIncome []PassiveItem
	Notes         string
}
