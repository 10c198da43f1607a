package metrics

import (
	"math"
	"time"

	"github.com/finfree-dev/finfree/internal/model"
)

// ElapsedLoanMonths returns how many full payments have occurred between
// the loan start date and now. A month counts once its payment day has
// passed. Never negative.
func ElapsedLoanMonths(terms model.LoanTerms, now time.Time) int {
	if terms.StartDate.IsZero() || now.Before(terms.StartDate) {
		return 0
	}
	months := (now.Year()-terms.StartDate.Year())*12 + int(now.Month()) - int(terms.StartDate.Month())
	if now.Day() < terms.StartDate.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// RemainingLoanMonths returns the payments left on an amortizing bucket.
func RemainingLoanMonths(terms model.LoanTerms, now time.Time) int {
	remaining := terms.TermMonths - ElapsedLoanMonths(terms, now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// loanBalance computes the remaining principal after n monthly payments
// using the standard amortization formula. Zero-rate loans degrade to
// straight-line paydown.
func loanBalance(terms model.LoanTerms, n int) float64 {
	if n >= terms.TermMonths {
		return 0
	}
	i := terms.AnnualRatePct / 100 / 12
	var balance float64
	if i == 0 {
		balance = terms.OriginalAmount - terms.MonthlyPayment*float64(n)
	} else {
		growth := math.Pow(1+i, float64(n))
		balance = terms.OriginalAmount*growth - terms.MonthlyPayment*(growth-1)/i
	}
	if balance < 0 {
		return 0
	}
	return balance
}

// BucketValue returns the current balance of an asset bucket. Stock and
// crypto buckets are worth quantity x last fetched price; loan buckets
// are worth the remaining principal owed to the holder.
func BucketValue(b model.AssetBucket, now time.Time) float64 {
	switch b.Kind {
	case model.KindStock, model.KindCrypto:
		return b.Quantity * b.Price
	case model.KindLoan:
		return loanBalance(b.Loan, ElapsedLoanMonths(b.Loan, now))
	default:
		return b.Balance
	}
}

// TotalBucketValue sums the current value of every bucket.
func TotalBucketValue(buckets []model.AssetBucket, now time.Time) float64 {
	var total float64
	for _, b := range buckets {
		total += BucketValue(b, now)
	}
	return total
}

// WeightedYield returns the balance-weighted average yield across the
// buckets as a fraction (0.04 = 4%). Reports false when the total
// balance is zero or the weighted yield comes out zero.
func WeightedYield(buckets []model.AssetBucket, now time.Time) (float64, bool) {
	var total, weighted float64
	for _, b := range buckets {
		v := BucketValue(b, now)
		total += v
		weighted += v * b.YieldPct / 100
	}
	if total <= 0 {
		return 0, false
	}
	wy := weighted / total
	if wy == 0 {
		return 0, false
	}
	return wy, true
}
