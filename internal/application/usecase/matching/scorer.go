// Package matching contains receipt-to-transaction matching use cases.
package matching

import (
	"context"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
	"github.com/receipt-match/backend/internal/domain/valueobject"
)

// Scorer computes the amount/date/vendor score breakdown for a receipt against a
// candidate. It is a pure function of its inputs apart from the two injected
// vendor capabilities; a failing alias lookup degrades to "no signal" rather than
// surfacing an error, so scoring itself can never fail.
type Scorer struct {
	aliases    adapter.VendorAliasLookup
	similarity adapter.SimilarityScorer
}

// NewScorer creates a new Scorer instance.
func NewScorer(aliases adapter.VendorAliasLookup, similarity adapter.SimilarityScorer) *Scorer {
	return &Scorer{
		aliases:    aliases,
		similarity: similarity,
	}
}

// Score computes the full score breakdown for one receipt/candidate pairing.
func (s *Scorer) Score(ctx context.Context, receipt *entity.Receipt, candidate entity.Candidate) valueobject.ScoreBreakdown {
	breakdown := valueobject.ScoreBreakdown{
		AmountScore: valueobject.AmountScore(receipt.Amount, candidate.Amount()),
		DateScore:   valueobject.DateScore(receipt.Date, candidate.Date()),
		VendorScore: s.vendorScore(ctx, receipt, candidate),
	}
	breakdown.Total = breakdown.AmountScore + breakdown.DateScore + breakdown.VendorScore
	return breakdown
}

// vendorScore normalizes both vendor texts (group labels lose their charge-count
// annotation first) and maps alias/exact/fuzzy signals to points.
func (s *Scorer) vendorScore(ctx context.Context, receipt *entity.Receipt, candidate entity.Candidate) int {
	candidateText := candidate.VendorText()
	if candidate.IsGroup() {
		candidateText = valueobject.ExtractVendorFromGroupName(candidateText)
	}

	receiptVendor := valueobject.NormalizeVendor(receipt.VendorText)
	candidateVendor := valueobject.NormalizeVendor(candidateText)
	if receiptVendor == "" || candidateVendor == "" {
		return 0
	}

	if receiptVendor == candidateVendor {
		return valueobject.VendorScore(true, 0)
	}

	if s.aliasHit(ctx, receiptVendor, candidateVendor) {
		return valueobject.VendorScore(true, 0)
	}

	return valueobject.VendorScore(false, s.similarity.Similarity(receiptVendor, candidateVendor))
}

// aliasHit reports whether the alias capability links the two vendors. Lookup
// errors are swallowed: an unavailable alias backend means no alias signal.
func (s *Scorer) aliasHit(ctx context.Context, receiptVendor, candidateVendor string) bool {
	receiptAlias, receiptFound, err := s.aliases.CanonicalAlias(ctx, receiptVendor)
	if err != nil {
		return false
	}
	candidateAlias, candidateFound, err := s.aliases.CanonicalAlias(ctx, candidateVendor)
	if err != nil {
		return false
	}

	switch {
	case receiptFound && receiptAlias == candidateVendor:
		return true
	case candidateFound && candidateAlias == receiptVendor:
		return true
	case receiptFound && candidateFound && receiptAlias == candidateAlias:
		return true
	default:
		return false
	}
}
