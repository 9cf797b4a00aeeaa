// Package valueobject contains domain value objects for the receipt matching system.
package valueobject

// Confidence represents the confidence level attached to a prediction.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

const (
	highConfidenceScore   = 0.80
	mediumConfidenceScore = 0.60
)

// ConfidenceFromScore bands a [0,1] confidence score into a level.
func ConfidenceFromScore(score float64) Confidence {
	switch {
	case score >= highConfidenceScore:
		return ConfidenceHigh
	case score >= mediumConfidenceScore:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// PredictionConfidence derives a confidence score and level from a pattern's
// historical accuracy. The score is the fraction of feedback agreeing with the
// classification (reject rate for Personal, confirm rate otherwise), so it is
// monotonic in the pattern's hit rate.
func PredictionConfidence(confirmCount, rejectCount int, classification Classification) (float64, Confidence) {
	total := confirmCount + rejectCount
	if total == 0 {
		return 0, ConfidenceLow
	}

	var score float64
	if classification == ClassificationPersonal {
		score = float64(rejectCount) / float64(total)
	} else {
		score = float64(confirmCount) / float64(total)
	}
	return score, ConfidenceFromScore(score)
}
