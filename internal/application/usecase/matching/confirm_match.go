// Package matching contains receipt-to-transaction matching use cases.
package matching

import (
	"context"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
	domainerror "github.com/receipt-match/backend/internal/domain/error"
)

// ConfirmMatchInput represents the input for confirming a proposed match.
type ConfirmMatchInput struct {
	UserID  uuid.UUID
	MatchID uuid.UUID
}

// ConfirmMatchOutput represents the confirmed match.
type ConfirmMatchOutput struct {
	Match *entity.ReceiptTransactionMatch
}

// ConfirmMatchUseCase transitions a proposed match to confirmed and writes the
// denormalized pointers onto the owning transaction or group.
type ConfirmMatchUseCase struct {
	txnRepo   adapter.TransactionRepository
	groupRepo adapter.TransactionGroupRepository
	matchRepo adapter.MatchRepository
}

// NewConfirmMatchUseCase creates a new ConfirmMatchUseCase instance.
func NewConfirmMatchUseCase(
	txnRepo adapter.TransactionRepository,
	groupRepo adapter.TransactionGroupRepository,
	matchRepo adapter.MatchRepository,
) *ConfirmMatchUseCase {
	return &ConfirmMatchUseCase{
		txnRepo:   txnRepo,
		groupRepo: groupRepo,
		matchRepo: matchRepo,
	}
}

// Execute confirms the match. Only proposed matches can be confirmed; manual
// matches are born confirmed and rejected matches must be re-proposed first.
func (uc *ConfirmMatchUseCase) Execute(ctx context.Context, input ConfirmMatchInput) (*ConfirmMatchOutput, error) {
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
	if match.Status != entity.MatchStatusProposed {
		return nil, domainerror.NewMatchError(
			domainerror.ErrCodeMatchNotConfirmable,
			"only proposed matches can be confirmed",
			domainerror.ErrMatchAlreadyConfirmed,
		)
	}

	match.Status = entity.MatchStatusConfirmed
	if err := uc.matchRepo.Update(ctx, match); err != nil {
		return nil, err
	}

	if match.Target.IsGroup() {
		group, err := uc.groupRepo.FindByID(ctx, match.Target.ID())
		if err != nil {
			return nil, err
		}
		group.MatchStatus = entity.GroupMatchStatusMatched
		group.MatchedReceiptID = &match.ReceiptID
		if err := uc.groupRepo.Update(ctx, group); err != nil {
			return nil, err
		}
	} else {
		txn, err := uc.txnRepo.FindByID(ctx, match.Target.ID())
		if err != nil {
			return nil, err
		}
		txn.MatchedReceiptID = &match.ReceiptID
		if err := uc.txnRepo.Update(ctx, txn); err != nil {
			return nil, err
		}
	}

	return &ConfirmMatchOutput{Match: match}, nil
}
