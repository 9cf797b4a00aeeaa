// Package valueobject contains domain value objects for the receipt matching system.
package valueobject

import (
	"time"

	"github.com/shopspring/decimal"
)

// Maximum points per scoring dimension. The three sub-scores are independent and
// sum to the total, so every total lands in [0,100].
const (
	MaxAmountScore = 40
	MaxDateScore   = 35
	MaxVendorScore = 25

	// ProposalThreshold is the fixed total score at or above which a pairing is
	// offered for confirmation. It is policy, not per-call configuration.
	ProposalThreshold = 70
)

// Fuzzy-similarity cut points for the vendor sub-score bands.
const (
	vendorStrongSimilarity = 0.85
	vendorWeakSimilarity   = 0.60
)

var (
	amountTightTolerance = decimal.New(10, -2)  // 0.10
	amountLooseTolerance = decimal.New(100, -2) // 1.00
)

// ScoreBreakdown holds the per-dimension scores for one receipt/candidate pairing.
type ScoreBreakdown struct {
	AmountScore int
	DateScore   int
	VendorScore int
	Total       int
}

// IsMatchWorthy reports whether the total clears the proposal threshold.
func (s ScoreBreakdown) IsMatchWorthy() bool {
	return s.Total >= ProposalThreshold
}

// AmountScore bands the absolute amount difference between receipt and candidate.
// Decimal arithmetic keeps the 0.10 and 1.00 boundaries exact; both bands are
// inclusive on the low side.
func AmountScore(receiptAmount, candidateAmount decimal.Decimal) int {
	diff := receiptAmount.Sub(candidateAmount).Abs()
	switch {
	case diff.LessThanOrEqual(amountTightTolerance):
		return MaxAmountScore
	case diff.LessThanOrEqual(amountLooseTolerance):
		return 20
	default:
		return 0
	}
}

// DateScore bands the whole-calendar-day distance between receipt and candidate
// dates, symmetric in its arguments. A missing candidate date scores zero rather
// than failing.
func DateScore(receiptDate, candidateDate time.Time) int {
	if receiptDate.IsZero() || candidateDate.IsZero() {
		return 0
	}
	switch days := daysApart(receiptDate, candidateDate); {
	case days == 0:
		return MaxDateScore
	case days == 1:
		return 30
	case days <= 3:
		return 25
	case days <= 7:
		return 10
	default:
		return 0
	}
}

// VendorScore maps vendor-similarity signals to points. An alias hit or exact
// normalized equality always takes the top band; otherwise the fuzzy similarity
// in [0,1] is banded. A capability returning no signal simply lands at zero.
func VendorScore(exactOrAlias bool, similarity float64) int {
	switch {
	case exactOrAlias:
		return MaxVendorScore
	case similarity >= vendorStrongSimilarity:
		return 15
	case similarity >= vendorWeakSimilarity:
		return 10
	default:
		return 0
	}
}

// daysApart returns the absolute distance between two instants in whole calendar
// days, ignoring the time-of-day component.
func daysApart(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	days := int(a.Sub(b).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days
}
