// Package matching contains receipt-to-transaction matching use cases.
package matching

import (
	"context"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
	domainerror "github.com/receipt-match/backend/internal/domain/error"
	"github.com/receipt-match/backend/internal/domain/valueobject"
)

// CreateManualMatchInput represents the input for a user-initiated match.
// Exactly one of TransactionID and GroupID must be set.
type CreateManualMatchInput struct {
	UserID        uuid.UUID
	ReceiptID     uuid.UUID
	TransactionID *uuid.UUID
	GroupID       *uuid.UUID
}

// CreateManualMatchOutput represents the created match.
type CreateManualMatchOutput struct {
	Match *entity.ReceiptTransactionMatch
}

// CreateManualMatchUseCase handles manually linking a receipt to a transaction
// or transaction group. Manual matches skip the proposed state and are confirmed
// on creation.
type CreateManualMatchUseCase struct {
	receiptRepo adapter.ReceiptRepository
	txnRepo     adapter.TransactionRepository
	groupRepo   adapter.TransactionGroupRepository
	matchRepo   adapter.MatchRepository
}

// NewCreateManualMatchUseCase creates a new CreateManualMatchUseCase instance.
func NewCreateManualMatchUseCase(
	receiptRepo adapter.ReceiptRepository,
	txnRepo adapter.TransactionRepository,
	groupRepo adapter.TransactionGroupRepository,
	matchRepo adapter.MatchRepository,
) *CreateManualMatchUseCase {
	return &CreateManualMatchUseCase{
		receiptRepo: receiptRepo,
		txnRepo:     txnRepo,
		groupRepo:   groupRepo,
		matchRepo:   matchRepo,
	}
}

// Execute performs the manual linking operation.
func (uc *CreateManualMatchUseCase) Execute(ctx context.Context, input CreateManualMatchInput) (*CreateManualMatchOutput, error) {
	target, err := valueobject.NewMatchTarget(input.TransactionID, input.GroupID)
	if err != nil {
		return nil, err
	}

	receipt, err := findOwnedReceipt(ctx, uc.receiptRepo, input.ReceiptID, input.UserID)
	if err != nil {
		return nil, err
	}

	match := entity.NewManualMatch(input.UserID, receipt.ID, target)

	if target.IsGroup() {
		group, err := uc.groupRepo.FindByID(ctx, target.ID())
		if err != nil {
			return nil, err
		}
		if group.UserID != input.UserID {
			return nil, domainerror.NewMatchError(
				domainerror.ErrCodeGroupNotFound,
				"transaction group not found",
				domainerror.ErrGroupNotFound,
			)
		}

		if err := uc.matchRepo.Create(ctx, match); err != nil {
			return nil, err
		}

		group.MatchStatus = entity.GroupMatchStatusMatched
		group.MatchedReceiptID = &receipt.ID
		if err := uc.groupRepo.Update(ctx, group); err != nil {
			return nil, err
		}
	} else {
		txn, err := uc.txnRepo.FindByID(ctx, target.ID())
		if err != nil {
			return nil, err
		}
		if txn.UserID != input.UserID {
			return nil, domainerror.NewMatchError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		if txn.IsGrouped() {
			return nil, domainerror.NewMatchError(
				domainerror.ErrCodeTransactionGrouped,
				"transaction belongs to a group and must be matched through it",
				domainerror.ErrTransactionGrouped,
			)
		}

		if err := uc.matchRepo.Create(ctx, match); err != nil {
			return nil, err
		}

		txn.MatchedReceiptID = &receipt.ID
		if err := uc.txnRepo.Update(ctx, txn); err != nil {
			return nil, err
		}
	}

	return &CreateManualMatchOutput{Match: match}, nil
}
