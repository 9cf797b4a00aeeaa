// Package receipt contains receipt management use cases.
package receipt

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
)

// CreateReceiptInput represents the input for receipt creation.
type CreateReceiptInput struct {
	UserID     uuid.UUID
	Date       time.Time
	VendorText string
	Amount     decimal.Decimal
	Notes      string
}

// CreateReceiptOutput represents the created receipt.
type CreateReceiptOutput struct {
	Receipt *entity.Receipt
}

// CreateReceiptUseCase handles receipt creation.
type CreateReceiptUseCase struct {
	receiptRepo adapter.ReceiptRepository
}

// NewCreateReceiptUseCase creates a new CreateReceiptUseCase instance.
func NewCreateReceiptUseCase(receiptRepo adapter.ReceiptRepository) *CreateReceiptUseCase {
	return &CreateReceiptUseCase{receiptRepo: receiptRepo}
}

// Execute creates the receipt.
func (uc *CreateReceiptUseCase) Execute(ctx context.Context, input CreateReceiptInput) (*CreateReceiptOutput, error) {
	receipt := entity.NewReceipt(input.UserID, input.Date, input.VendorText, input.Amount, input.Notes)
	if err := uc.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, fmt.Errorf("failed to create receipt: %w", err)
	}
	return &CreateReceiptOutput{Receipt: receipt}, nil
}
