// Package receipt contains receipt management use cases.
package receipt

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
)

// ListReceiptsInput represents the input for listing a user's receipts.
type ListReceiptsInput struct {
	UserID uuid.UUID
}

// ListReceiptsOutput represents the user's receipts, newest first.
type ListReceiptsOutput struct {
	Receipts []*entity.Receipt
}

// ListReceiptsUseCase lists a user's receipts.
type ListReceiptsUseCase struct {
	receiptRepo adapter.ReceiptRepository
}

// NewListReceiptsUseCase creates a new ListReceiptsUseCase instance.
func NewListReceiptsUseCase(receiptRepo adapter.ReceiptRepository) *ListReceiptsUseCase {
	return &ListReceiptsUseCase{receiptRepo: receiptRepo}
}

// Execute lists the receipts.
func (uc *ListReceiptsUseCase) Execute(ctx context.Context, input ListReceiptsInput) (*ListReceiptsOutput, error) {
	receipts, err := uc.receiptRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	return &ListReceiptsOutput{Receipts: receipts}, nil
}
