// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// VendorAliasLookup resolves a normalized vendor string to its canonical alias,
// when one is known. Returning found=false is the normal "no alias" outcome; an
// error means the lookup backend itself failed, which scoring treats as no signal.
type VendorAliasLookup interface {
	// CanonicalAlias returns the canonical alias for a normalized vendor string.
	CanonicalAlias(ctx context.Context, normalizedVendor string) (alias string, found bool, err error)
}

// SimilarityScorer computes a fuzzy similarity in [0,1] between two normalized
// vendor strings. 1 means identical, 0 means no overlap.
type SimilarityScorer interface {
	// Similarity returns the similarity between two normalized vendor strings.
	Similarity(a, b string) float64
}
