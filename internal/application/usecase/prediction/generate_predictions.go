// Package prediction contains expense pattern and prediction use cases.
package prediction

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
	domainerror "github.com/receipt-match/backend/internal/domain/error"
	"github.com/receipt-match/backend/internal/domain/valueobject"
)

// GeneratePredictionsInput represents the input for a prediction generation pass.
// An empty TransactionIDs walks every transaction the user owns; otherwise the
// pass is scoped to the listed transactions (ownership-checked, unknown IDs
// silently dropped).
type GeneratePredictionsInput struct {
	UserID         uuid.UUID
	TransactionIDs []uuid.UUID
}

// GeneratePredictionsOutput reports what the pass produced.
type GeneratePredictionsOutput struct {
	Generated []*entity.TransactionPrediction
	Skipped   int
}

// GeneratePredictionsUseCase walks a user's transactions and emits a pending
// business/personal prediction for every transaction whose vendor pattern has
// accumulated enough feedback to classify.
type GeneratePredictionsUseCase struct {
	txnRepo        adapter.TransactionRepository
	patternRepo    adapter.PatternRepository
	predictionRepo adapter.PredictionRepository
	userRepo       adapter.UserRepository
	emailService   adapter.EmailService
}

// NewGeneratePredictionsUseCase creates a new GeneratePredictionsUseCase instance.
func NewGeneratePredictionsUseCase(
	txnRepo adapter.TransactionRepository,
	patternRepo adapter.PatternRepository,
	predictionRepo adapter.PredictionRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
) *GeneratePredictionsUseCase {
	return &GeneratePredictionsUseCase{
		txnRepo:        txnRepo,
		patternRepo:    patternRepo,
		predictionRepo: predictionRepo,
		userRepo:       userRepo,
		emailService:   emailService,
	}
}

// Execute runs one generation pass over the scoped transactions, or over all of
// the user's transactions when no scope was given.
//
// A transaction is skipped, never failed, when any gate closes: its vendor
// normalizes to nothing, no pattern exists yet, the pattern is suppressed, the
// pattern requires a confirmed receipt match the transaction does not have, or
// a prediction already exists. A unique-constraint race on create counts as an
// existing prediction. Classification never gates: Undetermined patterns still
// predict, flagged business.
func (uc *GeneratePredictionsUseCase) Execute(ctx context.Context, input GeneratePredictionsInput) (*GeneratePredictionsOutput, error) {
	var (
		transactions []*entity.Transaction
		err          error
	)
	if len(input.TransactionIDs) > 0 {
		transactions, err = uc.txnRepo.FindByIDs(ctx, input.TransactionIDs, input.UserID)
	} else {
		transactions, err = uc.txnRepo.FindByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, err
	}

	out := &GeneratePredictionsOutput{}
	for _, txn := range transactions {
		prediction, err := uc.generateFor(ctx, input.UserID, txn)
		if err != nil {
			return nil, err
		}
		if prediction == nil {
			out.Skipped++
			continue
		}
		out.Generated = append(out.Generated, prediction)
	}

	uc.notify(ctx, input.UserID, len(out.Generated))

	return out, nil
}

// generateFor produces at most one prediction for a transaction. A nil, nil
// return means the transaction was gated out.
func (uc *GeneratePredictionsUseCase) generateFor(ctx context.Context, userID uuid.UUID, txn *entity.Transaction) (*entity.TransactionPrediction, error) {
	vendor := valueobject.NormalizeVendor(txn.Description)
	if vendor == "" {
		return nil, nil
	}

	pattern, err := uc.patternRepo.FindByUserAndVendor(ctx, userID, vendor)
	if err != nil {
		if errors.Is(err, domainerror.ErrPatternNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if pattern.IsSuppressed {
		return nil, nil
	}
	if pattern.RequiresReceiptMatch && txn.MatchedReceiptID == nil {
		return nil, nil
	}

	exists, err := uc.predictionRepo.ExistsByTransaction(ctx, txn.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, nil
	}

	classification, err := valueobject.Classify(pattern.ConfirmCount, pattern.RejectCount)
	if err != nil {
		return nil, err
	}

	// Undetermined is not a gate. It predicts business, carrying whatever
	// confidence the confirm rate supports.
	score, level := valueobject.PredictionConfidence(pattern.ConfirmCount, pattern.RejectCount, classification)
	prediction := entity.NewPatternPrediction(
		userID,
		txn.ID,
		pattern.ID,
		score,
		level,
		classification == valueobject.ClassificationPersonal,
	)

	if err := uc.predictionRepo.Create(ctx, prediction); err != nil {
		if errors.Is(err, domainerror.ErrPredictionExists) {
			return nil, nil
		}
		return nil, err
	}

	return prediction, nil
}

// notify queues a digest email about the generation pass. Queueing failures are
// logged and swallowed; they must not fail the pass.
func (uc *GeneratePredictionsUseCase) notify(ctx context.Context, userID uuid.UUID, generated int) {
	if generated == 0 || uc.emailService == nil {
		return
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil || !user.EmailNotifications {
		return
	}

	input := adapter.QueuePredictionDigestInput{
		UserEmail:      user.Email,
		UserName:       user.Name,
		GeneratedCount: generated,
	}
	if err := uc.emailService.QueuePredictionDigest(ctx, input); err != nil {
		slog.Warn("Failed to queue prediction digest email",
			"user_id", userID,
			"error", err,
		)
	}
}
