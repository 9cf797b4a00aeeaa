// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"github.com/receipt-match/backend/internal/application/adapter"
)

// bigramSimilarity implements adapter.SimilarityScorer using the Sorensen-Dice
// coefficient over character bigrams. It tolerates word reordering and small
// edits, which suits vendor strings that differ only in processor noise.
type bigramSimilarity struct{}

// NewBigramSimilarity creates a new bigram similarity scorer.
func NewBigramSimilarity() adapter.SimilarityScorer {
	return bigramSimilarity{}
}

// Similarity returns the Dice coefficient of the two strings' bigram sets.
func (bigramSimilarity) Similarity(a, b string) float64 {
	if a == b {
		if a == "" {
			return 0
		}
		return 1
	}

	bigramsA := bigrams(a)
	bigramsB := bigrams(b)
	if len(bigramsA) == 0 || len(bigramsB) == 0 {
		return 0
	}

	counts := make(map[string]int, len(bigramsA))
	for _, bg := range bigramsA {
		counts[bg]++
	}

	overlap := 0
	for _, bg := range bigramsB {
		if counts[bg] > 0 {
			counts[bg]--
			overlap++
		}
	}

	return 2 * float64(overlap) / float64(len(bigramsA)+len(bigramsB))
}

func bigrams(s string) []string {
	runes := []rune(s)
	if len(runes) < 2 {
		return nil
	}
	out := make([]string, 0, len(runes)-1)
	for i := 0; i+1 < len(runes); i++ {
		out = append(out, string(runes[i:i+2]))
	}
	return out
}
