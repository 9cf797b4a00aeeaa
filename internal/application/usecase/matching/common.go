// Package matching contains receipt-to-transaction matching use cases.
package matching

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
	domainerror "github.com/receipt-match/backend/internal/domain/error"
	"github.com/receipt-match/backend/internal/domain/valueobject"
)

// ScoredCandidate pairs a candidate with its score breakdown for one receipt.
type ScoredCandidate struct {
	Candidate entity.Candidate
	Score     valueobject.ScoreBreakdown
}

// BuildCandidatePool assembles the candidate pool for a receipt: every ungrouped
// transaction plus every transaction group. Transactions owned by a group are
// filtered out even if the caller passed them in, so no transaction can appear in
// the pool both individually and through its group.
func BuildCandidatePool(transactions []*entity.Transaction, groups []*entity.TransactionGroup) []entity.Candidate {
	pool := make([]entity.Candidate, 0, len(transactions)+len(groups))
	for _, t := range transactions {
		if t.IsGrouped() {
			continue
		}
		pool = append(pool, entity.TransactionCandidate(t))
	}
	for _, g := range groups {
		pool = append(pool, entity.GroupCandidate(g))
	}
	return pool
}

// sortByScoreDesc orders scored candidates best first.
func sortByScoreDesc(scored []ScoredCandidate) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score.Total > scored[j].Score.Total
	})
}

// findOwnedReceipt loads a receipt and verifies ownership. A receipt owned by
// another user is reported as not found to avoid leaking its existence.
func findOwnedReceipt(ctx context.Context, repo adapter.ReceiptRepository, receiptID, userID uuid.UUID) (*entity.Receipt, error) {
	receipt, err := repo.FindByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	if receipt.UserID != userID {
		return nil, domainerror.NewMatchError(
			domainerror.ErrCodeReceiptNotFound,
			"receipt not found",
			domainerror.ErrReceiptNotFound,
		)
	}
	return receipt, nil
}

// targetRef converts a match target into the repository query form.
func targetRef(target valueobject.MatchTarget) adapter.TargetRef {
	id := target.ID()
	if target.IsGroup() {
		return adapter.TargetRef{GroupID: &id}
	}
	return adapter.TargetRef{TransactionID: &id}
}
