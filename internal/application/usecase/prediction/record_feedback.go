// Package prediction contains expense pattern and prediction use cases.
package prediction

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
	domainerror "github.com/receipt-match/backend/internal/domain/error"
	"github.com/receipt-match/backend/internal/domain/valueobject"
)

// FeedbackInput represents the input for confirming or rejecting a prediction.
type FeedbackInput struct {
	UserID       uuid.UUID
	PredictionID uuid.UUID
}

// FeedbackOutput carries the updated prediction and its backing pattern.
type FeedbackOutput struct {
	Prediction *entity.TransactionPrediction
	Pattern    *entity.ExpensePattern
}

// RecordFeedbackUseCase applies a user's confirm/reject decision to a prediction
// and folds it into the vendor's rolling counters. Manual-override predictions
// get a pattern created on first feedback so later generation passes can use it.
type RecordFeedbackUseCase struct {
	txnRepo        adapter.TransactionRepository
	patternRepo    adapter.PatternRepository
	predictionRepo adapter.PredictionRepository
}

// NewRecordFeedbackUseCase creates a new RecordFeedbackUseCase instance.
func NewRecordFeedbackUseCase(
	txnRepo adapter.TransactionRepository,
	patternRepo adapter.PatternRepository,
	predictionRepo adapter.PredictionRepository,
) *RecordFeedbackUseCase {
	return &RecordFeedbackUseCase{
		txnRepo:        txnRepo,
		patternRepo:    patternRepo,
		predictionRepo: predictionRepo,
	}
}

// Confirm marks the prediction confirmed and records a confirmation on the
// vendor pattern. Confirming an already-confirmed prediction is a no-op so
// retries cannot double-count.
func (uc *RecordFeedbackUseCase) Confirm(ctx context.Context, input FeedbackInput) (*FeedbackOutput, error) {
	return uc.apply(ctx, input, entity.PredictionStatusConfirmed)
}

// Reject marks the prediction rejected and records a rejection on the vendor
// pattern. Rejecting an already-rejected prediction is a no-op.
func (uc *RecordFeedbackUseCase) Reject(ctx context.Context, input FeedbackInput) (*FeedbackOutput, error) {
	return uc.apply(ctx, input, entity.PredictionStatusRejected)
}

func (uc *RecordFeedbackUseCase) apply(ctx context.Context, input FeedbackInput, status entity.PredictionStatus) (*FeedbackOutput, error) {
	prediction, err := uc.predictionRepo.FindByID(ctx, input.PredictionID)
	if err != nil {
		return nil, err
	}
	if prediction.UserID != input.UserID {
		return nil, domainerror.NewPatternError(
			domainerror.ErrCodePredictionNotFound,
			"prediction not found",
			domainerror.ErrPredictionNotFound,
		)
	}
	if prediction.Status == status {
		return &FeedbackOutput{Prediction: prediction}, nil
	}

	pattern, err := uc.resolvePattern(ctx, prediction)
	if err != nil {
		return nil, err
	}

	if status == entity.PredictionStatusConfirmed {
		pattern.RecordConfirm()
	} else {
		pattern.RecordReject()
	}
	if err := uc.patternRepo.Update(ctx, pattern); err != nil {
		return nil, err
	}

	prediction.Status = status
	if prediction.PatternID == nil {
		prediction.PatternID = &pattern.ID
	}
	if err := uc.predictionRepo.Update(ctx, prediction); err != nil {
		return nil, err
	}

	return &FeedbackOutput{Prediction: prediction, Pattern: pattern}, nil
}

// resolvePattern loads the prediction's backing pattern. Manual overrides have
// none, so the transaction's vendor pattern is looked up and created on demand.
func (uc *RecordFeedbackUseCase) resolvePattern(ctx context.Context, prediction *entity.TransactionPrediction) (*entity.ExpensePattern, error) {
	if prediction.PatternID != nil {
		return uc.patternRepo.FindByID(ctx, *prediction.PatternID)
	}

	txn, err := uc.txnRepo.FindByID(ctx, prediction.TransactionID)
	if err != nil {
		return nil, err
	}

	vendor := valueobject.NormalizeVendor(txn.Description)
	pattern, err := uc.patternRepo.FindByUserAndVendor(ctx, prediction.UserID, vendor)
	if err == nil {
		return pattern, nil
	}
	if !errors.Is(err, domainerror.ErrPatternNotFound) {
		return nil, err
	}

	pattern = entity.NewExpensePattern(prediction.UserID, vendor)
	if err := uc.patternRepo.Create(ctx, pattern); err != nil {
		return nil, err
	}
	return pattern, nil
}
