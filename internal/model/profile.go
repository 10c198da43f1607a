package model

import "time"

// CalcMode selects how the freedom-number divisor is derived.
type CalcMode string

const (
	// ModeSimple divides the annual gap by the flat withdrawal rate.
	ModeSimple CalcMode = "simple"
	// ModeAdvanced divides by the asset-weighted yield of the buckets.
	ModeAdvanced CalcMode = "advanced"
)

// Profile holds the user's planning assumptions. WithdrawalRatePct is
// always set (default 4); the rest are optional and 0 means "not set".
type Profile struct {
	WithdrawalRatePct   float64
	ExpectedReturnPct   float64
	InflationPct        float64
	TaxBracketPct       float64
	MonthlyContribution float64
	Mode                CalcMode
}

// BucketKind classifies asset buckets by how their balance is derived.
type BucketKind string

const (
	// KindFlat buckets carry a balance and a flat yield percentage.
	KindFlat BucketKind = "flat"
	// KindStock buckets hold quantity x externally fetched share price.
	KindStock BucketKind = "stock"
	// KindCrypto buckets hold quantity x externally fetched spot price.
	KindCrypto BucketKind = "crypto"
	// KindLoan buckets are amortizing notes; balance is the remaining
	// principal derived from the loan terms and elapsed months.
	KindLoan BucketKind = "loan"
)

// LoanTerms holds the fixed terms of an amortizing bucket.
type LoanTerms struct {
	OriginalAmount float64
	AnnualRatePct  float64
	MonthlyPayment float64
	TermMonths     int
	StartDate      time.Time
}

// AssetBucket is a labeled pool of invested assets.
type AssetBucket struct {
	ID       int64
	Name     string
	Kind     BucketKind
	Balance  float64 // flat buckets; derived for the other kinds
	YieldPct float64

	// Stock/crypto kinds.
	Ticker         string
	Quantity       float64
	Price          float64
	PriceUpdatedAt time.Time

	// Loan kind.
	Loan LoanTerms
}
