// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
	domainerror "github.com/receipt-match/backend/internal/domain/error"
	"github.com/receipt-match/backend/internal/integration/persistence/model"
)

// predictionRepository implements the adapter.PredictionRepository interface.
type predictionRepository struct {
	db *gorm.DB
}

// NewPredictionRepository creates a new prediction repository instance.
func NewPredictionRepository(db *gorm.DB) adapter.PredictionRepository {
	return &predictionRepository{
		db: db,
	}
}

// Create creates a new prediction. A unique-constraint violation on the
// transaction column is translated to ErrPredictionExists so concurrent
// generation passes dedupe cleanly.
func (r *predictionRepository) Create(ctx context.Context, prediction *entity.TransactionPrediction) error {
	predictionModel := model.TransactionPredictionFromEntity(prediction)
	result := r.db.WithContext(ctx).Create(predictionModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.NewPatternError(
				domainerror.ErrCodePredictionExists,
				"prediction already exists for transaction",
				domainerror.ErrPredictionExists,
			)
		}
		return result.Error
	}
	return nil
}

// FindByID retrieves a prediction by its ID.
func (r *predictionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TransactionPrediction, error) {
	var predictionModel model.TransactionPredictionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&predictionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewPatternError(
				domainerror.ErrCodePredictionNotFound,
				"prediction not found",
				domainerror.ErrPredictionNotFound,
			)
		}
		return nil, result.Error
	}
	return predictionModel.ToEntity(), nil
}

// FindByUser retrieves all predictions for a given user, newest first.
func (r *predictionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.TransactionPrediction, error) {
	var predictionModels []model.TransactionPredictionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&predictionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	predictions := make([]*entity.TransactionPrediction, len(predictionModels))
	for i, pm := range predictionModels {
		predictions[i] = pm.ToEntity()
	}
	return predictions, nil
}

// ExistsByTransaction checks whether a prediction exists for the transaction.
func (r *predictionRepository) ExistsByTransaction(ctx context.Context, transactionID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionPredictionModel{}).
		Where("transaction_id = ?", transactionID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing prediction in the database.
func (r *predictionRepository) Update(ctx context.Context, prediction *entity.TransactionPrediction) error {
	predictionModel := model.TransactionPredictionFromEntity(prediction)
	result := r.db.WithContext(ctx).Save(predictionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// isUniqueViolation reports whether the error is a unique-constraint violation.
// Postgres surfaces code 23505 via lib/pq; the sqlite driver used in tests only
// gives a message, so both are checked.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique")
}
