package valueobject

import (
	"errors"
	"testing"

	domainerror "github.com/receipt-match/backend/internal/domain/error"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		confirms int
		rejects  int
		expected Classification
	}{
		{name: "no feedback", confirms: 0, rejects: 0, expected: ClassificationUndetermined},
		{name: "single confirm", confirms: 1, rejects: 0, expected: ClassificationBusiness},
		{name: "exact fifty fifty is business", confirms: 2, rejects: 2, expected: ClassificationBusiness},
		{name: "sixty percent reject at five", confirms: 2, rejects: 3, expected: ClassificationPersonal},
		{name: "all rejects below minimum total", confirms: 0, rejects: 2, expected: ClassificationUndetermined},
		{name: "fifty five percent reject stays undetermined", confirms: 9, rejects: 11, expected: ClassificationUndetermined},
		{name: "all rejects at minimum total", confirms: 0, rejects: 3, expected: ClassificationPersonal},
		{name: "strong confirm history", confirms: 10, rejects: 2, expected: ClassificationBusiness},
		{name: "just under sixty percent reject", confirms: 41, rejects: 59, expected: ClassificationUndetermined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.confirms, tt.rejects)
			if err != nil {
				t.Fatalf("Classify(%d, %d) returned error: %v", tt.confirms, tt.rejects, err)
			}
			if got != tt.expected {
				t.Errorf("Classify(%d, %d) = %s, want %s", tt.confirms, tt.rejects, got, tt.expected)
			}
		})
	}
}

func TestClassifyNegativeCounters(t *testing.T) {
	for _, counts := range [][2]int{{-1, 0}, {0, -1}, {-2, -3}} {
		_, err := Classify(counts[0], counts[1])
		if err == nil {
			t.Fatalf("Classify(%d, %d) expected validation error", counts[0], counts[1])
		}
		if !errors.Is(err, domainerror.ErrNegativePatternCounter) {
			t.Errorf("expected ErrNegativePatternCounter, got %v", err)
		}
	}
}

func TestPredictionConfidence(t *testing.T) {
	tests := []struct {
		name           string
		confirms       int
		rejects        int
		classification Classification
		expectedScore  float64
		expectedLevel  Confidence
	}{
		{name: "strong business", confirms: 9, rejects: 1, classification: ClassificationBusiness, expectedScore: 0.9, expectedLevel: ConfidenceHigh},
		{name: "moderate business", confirms: 3, rejects: 2, classification: ClassificationBusiness, expectedScore: 0.6, expectedLevel: ConfidenceMedium},
		{name: "personal uses reject rate", confirms: 1, rejects: 4, classification: ClassificationPersonal, expectedScore: 0.8, expectedLevel: ConfidenceHigh},
		{name: "undetermined uses confirm rate", confirms: 1, rejects: 3, classification: ClassificationUndetermined, expectedScore: 0.25, expectedLevel: ConfidenceLow},
		{name: "no feedback", confirms: 0, rejects: 0, classification: ClassificationUndetermined, expectedScore: 0, expectedLevel: ConfidenceLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, level := PredictionConfidence(tt.confirms, tt.rejects, tt.classification)
			if score != tt.expectedScore {
				t.Errorf("score = %v, want %v", score, tt.expectedScore)
			}
			if level != tt.expectedLevel {
				t.Errorf("level = %s, want %s", level, tt.expectedLevel)
			}
		})
	}
}

func TestPredictionConfidenceMonotonicInConfirmRate(t *testing.T) {
	previous := -1.0
	for confirms := 0; confirms <= 10; confirms++ {
		score, _ := PredictionConfidence(confirms, 10-confirms, ClassificationBusiness)
		if score < previous {
			t.Fatalf("confidence not monotonic: %v after %v at %d confirms", score, previous, confirms)
		}
		previous = score
	}
}
