package adapters

import (
	"math"
	"testing"
)

func TestBigramSimilarity(t *testing.T) {
	scorer := NewBigramSimilarity()

	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{
			name: "identical strings",
			a:    "STARBUCKS",
			b:    "STARBUCKS",
			want: 1,
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: 0,
		},
		{
			name: "one empty",
			a:    "STARBUCKS",
			b:    "",
			want: 0,
		},
		{
			name: "single characters never match",
			a:    "A",
			b:    "A",
			want: 1, // equal short-circuits before bigram extraction
		},
		{
			name: "no overlap",
			a:    "ABCD",
			b:    "WXYZ",
			want: 0,
		},
		{
			name: "known dice value",
			a:    "NIGHT",
			b:    "NACHT",
			want: 0.25, // shares only "HT" of 4+4 bigrams
		},
		{
			name: "repeated bigrams counted once each",
			a:    "AAAA",
			b:    "AA",
			want: 0.5, // one "AA" pairs against three
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Similarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestBigramSimilaritySymmetric(t *testing.T) {
	scorer := NewBigramSimilarity()

	pairs := [][2]string{
		{"STARBUCKS", "STARBUCKS COFFEE"},
		{"AMAZON MKTP", "AMAZON MARKETPLACE"},
		{"UBER TRIP", "UBER EATS"},
	}

	for _, p := range pairs {
		ab := scorer.Similarity(p[0], p[1])
		ba := scorer.Similarity(p[1], p[0])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("Similarity(%q, %q) = %v but reversed = %v", p[0], p[1], ab, ba)
		}
		if ab <= 0 || ab >= 1 {
			t.Errorf("Similarity(%q, %q) = %v, want strictly between 0 and 1", p[0], p[1], ab)
		}
	}
}
