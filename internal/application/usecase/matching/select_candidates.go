// Package matching contains receipt-to-transaction matching use cases.
package matching

import (
	"context"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/application/adapter"
)

// SelectCandidatesInput represents the input for listing a receipt's candidates.
type SelectCandidatesInput struct {
	UserID    uuid.UUID
	ReceiptID uuid.UUID
}

// SelectCandidatesOutput represents the scored candidate pool, best first.
type SelectCandidatesOutput struct {
	Candidates []ScoredCandidate
}

// SelectCandidatesUseCase builds and scores the candidate pool for a receipt.
type SelectCandidatesUseCase struct {
	receiptRepo adapter.ReceiptRepository
	txnRepo     adapter.TransactionRepository
	groupRepo   adapter.TransactionGroupRepository
	scorer      *Scorer
}

// NewSelectCandidatesUseCase creates a new SelectCandidatesUseCase instance.
func NewSelectCandidatesUseCase(
	receiptRepo adapter.ReceiptRepository,
	txnRepo adapter.TransactionRepository,
	groupRepo adapter.TransactionGroupRepository,
	scorer *Scorer,
) *SelectCandidatesUseCase {
	return &SelectCandidatesUseCase{
		receiptRepo: receiptRepo,
		txnRepo:     txnRepo,
		groupRepo:   groupRepo,
		scorer:      scorer,
	}
}

// Execute assembles the candidate pool and scores every member against the
// receipt. Groups are included regardless of their current match status so a
// rejected pairing can surface again.
func (uc *SelectCandidatesUseCase) Execute(ctx context.Context, input SelectCandidatesInput) (*SelectCandidatesOutput, error) {
	receipt, err := findOwnedReceipt(ctx, uc.receiptRepo, input.ReceiptID, input.UserID)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.txnRepo.FindUngroupedByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	groups, err := uc.groupRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	pool := BuildCandidatePool(transactions, groups)
	scored := make([]ScoredCandidate, 0, len(pool))
	for _, candidate := range pool {
		scored = append(scored, ScoredCandidate{
			Candidate: candidate,
			Score:     uc.scorer.Score(ctx, receipt, candidate),
		})
	}
	sortByScoreDesc(scored)

	return &SelectCandidatesOutput{Candidates: scored}, nil
}
