// Package group contains transaction group management use cases.
package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
	domainerror "github.com/receipt-match/backend/internal/domain/error"
)

// CreateGroupInput represents the input for rolling transactions into a group.
type CreateGroupInput struct {
	UserID         uuid.UUID
	DisplayName    string
	TransactionIDs []uuid.UUID
}

// CreateGroupOutput represents the created group.
type CreateGroupOutput struct {
	Group *entity.TransactionGroup
}

// CreateGroupUseCase rolls a set of the user's transactions into one matching
// candidate. The combined amount, count, and display date are derived from the
// members; the display date is the most recent member date.
type CreateGroupUseCase struct {
	txnRepo   adapter.TransactionRepository
	groupRepo adapter.TransactionGroupRepository
}

// NewCreateGroupUseCase creates a new CreateGroupUseCase instance.
func NewCreateGroupUseCase(
	txnRepo adapter.TransactionRepository,
	groupRepo adapter.TransactionGroupRepository,
) *CreateGroupUseCase {
	return &CreateGroupUseCase{
		txnRepo:   txnRepo,
		groupRepo: groupRepo,
	}
}

// Execute creates the group. Every referenced transaction must belong to the
// user and be ungrouped; a transaction already owned by a group cannot move.
func (uc *CreateGroupUseCase) Execute(ctx context.Context, input CreateGroupInput) (*CreateGroupOutput, error) {
	if len(input.TransactionIDs) == 0 {
		return nil, domainerror.NewMatchError(
			domainerror.ErrCodeEmptyGroup,
			"a group needs at least one transaction",
			domainerror.ErrEmptyGroup,
		)
	}

	members, err := uc.txnRepo.FindByIDs(ctx, input.TransactionIDs, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if len(members) != len(input.TransactionIDs) {
		return nil, domainerror.NewMatchError(
			domainerror.ErrCodeTransactionNotFound,
			"one or more transactions not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	combined := decimal.Zero
	var displayDate = members[0].Date
	for _, member := range members {
		if member.IsGrouped() {
			return nil, domainerror.NewMatchError(
				domainerror.ErrCodeTransactionGrouped,
				"transaction already belongs to a group",
				domainerror.ErrTransactionGrouped,
			)
		}
		combined = combined.Add(member.Amount)
		if member.Date.After(displayDate) {
			displayDate = member.Date
		}
	}

	group := entity.NewTransactionGroup(input.UserID, input.DisplayName, combined, len(members), displayDate)
	if err := uc.groupRepo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	if _, err := uc.groupRepo.AssignTransactions(ctx, group.ID, input.TransactionIDs); err != nil {
		return nil, fmt.Errorf("failed to assign transactions to group: %w", err)
	}

	return &CreateGroupOutput{Group: group}, nil
}
