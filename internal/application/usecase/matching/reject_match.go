// Package matching contains receipt-to-transaction matching use cases.
package matching

import (
	"context"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
	domainerror "github.com/receipt-match/backend/internal/domain/error"
)

// RejectMatchInput represents the input for rejecting (or unmatching) a match.
type RejectMatchInput struct {
	UserID  uuid.UUID
	MatchID uuid.UUID
}

// RejectMatchOutput represents the rejected match.
type RejectMatchOutput struct {
	Match *entity.ReceiptTransactionMatch
}

// RejectMatchUseCase transitions a match to rejected. The same transition serves
// both "reject this proposal" and "unmatch this confirmed pairing": the owning
// group or transaction is reset so the pairing can be re-proposed later. The
// match record is retained for history, never deleted.
type RejectMatchUseCase struct {
	txnRepo   adapter.TransactionRepository
	groupRepo adapter.TransactionGroupRepository
	matchRepo adapter.MatchRepository
}

// NewRejectMatchUseCase creates a new RejectMatchUseCase instance.
func NewRejectMatchUseCase(
	txnRepo adapter.TransactionRepository,
	groupRepo adapter.TransactionGroupRepository,
	matchRepo adapter.MatchRepository,
) *RejectMatchUseCase {
	return &RejectMatchUseCase{
		txnRepo:   txnRepo,
		groupRepo: groupRepo,
		matchRepo: matchRepo,
	}
}

// Execute rejects the match. Rejecting an already-rejected match is a no-op
// success so the operation is safe to retry.
func (uc *RejectMatchUseCase) Execute(ctx context.Context, input RejectMatchInput) (*RejectMatchOutput, error) {
	match, err := uc.matchRepo.FindByID(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}
	if match.UserID != input.UserID {
		return nil, domainerror.NewMatchError(
			domainerror.ErrCodeMatchNotFound,
			"match not found",
			domainerror.ErrMatchNotFound,
		)
	}
	if match.Status == entity.MatchStatusRejected {
		return &RejectMatchOutput{Match: match}, nil
	}

	match.Status = entity.MatchStatusRejected
	if err := uc.matchRepo.Update(ctx, match); err != nil {
		return nil, err
	}

	if match.Target.IsGroup() {
		group, err := uc.groupRepo.FindByID(ctx, match.Target.ID())
		if err != nil {
			return nil, err
		}
		group.MatchStatus = entity.GroupMatchStatusUnmatched
		group.MatchedReceiptID = nil
		if err := uc.groupRepo.Update(ctx, group); err != nil {
			return nil, err
		}
	} else {
		if err := uc.txnRepo.ClearMatchedReceipt(ctx, match.Target.ID()); err != nil {
			return nil, err
		}
	}

	return &RejectMatchOutput{Match: match}, nil
}
