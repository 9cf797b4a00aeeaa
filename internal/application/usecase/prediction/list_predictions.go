// Package prediction contains expense pattern and prediction use cases.
package prediction

import (
	"context"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
)

// ListPredictionsInput represents the input for listing a user's predictions.
type ListPredictionsInput struct {
	UserID uuid.UUID
}

// ListPredictionsOutput represents the user's predictions, newest first.
type ListPredictionsOutput struct {
	Predictions []*entity.TransactionPrediction
}

// ListPredictionsUseCase lists a user's transaction predictions.
type ListPredictionsUseCase struct {
	predictionRepo adapter.PredictionRepository
}

// NewListPredictionsUseCase creates a new ListPredictionsUseCase instance.
func NewListPredictionsUseCase(predictionRepo adapter.PredictionRepository) *ListPredictionsUseCase {
	return &ListPredictionsUseCase{predictionRepo: predictionRepo}
}

// Execute lists the predictions.
func (uc *ListPredictionsUseCase) Execute(ctx context.Context, input ListPredictionsInput) (*ListPredictionsOutput, error) {
	predictions, err := uc.predictionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &ListPredictionsOutput{Predictions: predictions}, nil
}
