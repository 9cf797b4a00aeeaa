// Package valueobject contains domain value objects for the receipt matching system.
package valueobject

import (
	domainerror "github.com/receipt-match/backend/internal/domain/error"
)

// Classification is the ternary business/personal label derived from a pattern's
// confirm/reject counters.
type Classification string

const (
	ClassificationBusiness     Classification = "business"
	ClassificationPersonal     Classification = "personal"
	ClassificationUndetermined Classification = "undetermined"
)

// Minimum feedback totals before each classification can fire.
const (
	businessMinTotal = 1
	personalMinTotal = 3
)

// Classify derives the classification from rolling confirm/reject counters.
//
// Business fires when at least half of the feedback confirmed the pattern and is
// checked first, so an exact 50/50 split classifies Business. Personal fires when
// at least 60% of feedback rejected it and at least three decisions exist. Zero
// feedback short-circuits to Undetermined before any ratio is formed. The ratio
// checks use cross-multiplied integer comparisons so the 50% and 60% boundaries
// are exact.
func Classify(confirmCount, rejectCount int) (Classification, error) {
	if confirmCount < 0 || rejectCount < 0 {
		return ClassificationUndetermined, domainerror.NewPatternError(
			domainerror.ErrCodeNegativePatternCounter,
			"confirm and reject counts cannot be negative",
			domainerror.ErrNegativePatternCounter,
		)
	}

	total := confirmCount + rejectCount
	if total == 0 {
		return ClassificationUndetermined, nil
	}

	// confirm/total >= 0.50
	if total >= businessMinTotal && confirmCount*2 >= total {
		return ClassificationBusiness, nil
	}

	// reject/total >= 0.60
	if total >= personalMinTotal && rejectCount*5 >= total*3 {
		return ClassificationPersonal, nil
	}

	return ClassificationUndetermined, nil
}
