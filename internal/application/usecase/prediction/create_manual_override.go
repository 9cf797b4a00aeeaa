// Package prediction contains expense pattern and prediction use cases.
package prediction

import (
	"context"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
	domainerror "github.com/receipt-match/backend/internal/domain/error"
)

// CreateManualOverrideInput represents the input for a user-entered prediction.
type CreateManualOverrideInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// CreateManualOverrideOutput represents the created prediction.
type CreateManualOverrideOutput struct {
	Prediction *entity.TransactionPrediction
}

// CreateManualOverrideUseCase records a business call entered directly by the
// user for a transaction no pattern covers yet. The prediction is confirmed on
// creation and has no backing pattern until feedback creates one.
type CreateManualOverrideUseCase struct {
	txnRepo        adapter.TransactionRepository
	predictionRepo adapter.PredictionRepository
}

// NewCreateManualOverrideUseCase creates a new CreateManualOverrideUseCase instance.
func NewCreateManualOverrideUseCase(
	txnRepo adapter.TransactionRepository,
	predictionRepo adapter.PredictionRepository,
) *CreateManualOverrideUseCase {
	return &CreateManualOverrideUseCase{
		txnRepo:        txnRepo,
		predictionRepo: predictionRepo,
	}
}

// Execute creates the override. A transaction can carry at most one prediction,
// so an existing one fails the operation rather than being replaced.
func (uc *CreateManualOverrideUseCase) Execute(ctx context.Context, input CreateManualOverrideInput) (*CreateManualOverrideOutput, error) {
	txn, err := uc.txnRepo.FindByID(ctx, input.TransactionID)
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

	exists, err := uc.predictionRepo.ExistsByTransaction(ctx, txn.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domainerror.NewPatternError(
			domainerror.ErrCodePredictionExists,
			"prediction already exists for transaction",
			domainerror.ErrPredictionExists,
		)
	}

	prediction := entity.NewManualOverridePrediction(input.UserID, txn.ID)
	if err := uc.predictionRepo.Create(ctx, prediction); err != nil {
		return nil, err
	}

	return &CreateManualOverrideOutput{Prediction: prediction}, nil
}
