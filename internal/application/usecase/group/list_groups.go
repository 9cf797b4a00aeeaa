// Package group contains transaction group management use cases.
package group

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
)

// ListGroupsInput represents the input for listing a user's transaction groups.
type ListGroupsInput struct {
	UserID uuid.UUID
}

// ListGroupsOutput represents the user's transaction groups.
type ListGroupsOutput struct {
	Groups []*entity.TransactionGroup
}

// ListGroupsUseCase lists a user's transaction groups.
type ListGroupsUseCase struct {
	groupRepo adapter.TransactionGroupRepository
}

// NewListGroupsUseCase creates a new ListGroupsUseCase instance.
func NewListGroupsUseCase(groupRepo adapter.TransactionGroupRepository) *ListGroupsUseCase {
	return &ListGroupsUseCase{groupRepo: groupRepo}
}

// Execute lists the groups.
func (uc *ListGroupsUseCase) Execute(ctx context.Context, input ListGroupsInput) (*ListGroupsOutput, error) {
	groups, err := uc.groupRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction groups: %w", err)
	}
	return &ListGroupsOutput{Groups: groups}, nil
}
