// Package receipt contains receipt management use cases.
package receipt

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/application/adapter"
	domainerror "github.com/receipt-match/backend/internal/domain/error"
)

// DeleteReceiptInput represents the input for receipt deletion.
type DeleteReceiptInput struct {
	UserID    uuid.UUID
	ReceiptID uuid.UUID
}

// DeleteReceiptUseCase soft-deletes a receipt.
type DeleteReceiptUseCase struct {
	receiptRepo adapter.ReceiptRepository
}

// NewDeleteReceiptUseCase creates a new DeleteReceiptUseCase instance.
func NewDeleteReceiptUseCase(receiptRepo adapter.ReceiptRepository) *DeleteReceiptUseCase {
	return &DeleteReceiptUseCase{receiptRepo: receiptRepo}
}

// Execute deletes the receipt after verifying ownership.
func (uc *DeleteReceiptUseCase) Execute(ctx context.Context, input DeleteReceiptInput) error {
	receipt, err := uc.receiptRepo.FindByID(ctx, input.ReceiptID)
	if err != nil {
		return err
	}
	if receipt.UserID != input.UserID {
		return domainerror.NewMatchError(
			domainerror.ErrCodeReceiptNotFound,
			"receipt not found",
			domainerror.ErrReceiptNotFound,
		)
	}
	if err := uc.receiptRepo.Delete(ctx, input.ReceiptID); err != nil {
		return fmt.Errorf("failed to delete receipt: %w", err)
	}
	return nil
}
