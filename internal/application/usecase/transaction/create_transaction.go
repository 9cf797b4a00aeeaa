// Package transaction contains transaction management use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// CreateTransactionOutput represents the created transaction.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation.
type CreateTransactionUseCase struct {
	txnRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(txnRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{txnRepo: txnRepo}
}

// Execute creates the transaction.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	txn := entity.NewTransaction(input.UserID, input.Date, input.Description, input.Amount)
	if err := uc.txnRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return &CreateTransactionOutput{Transaction: txn}, nil
}
