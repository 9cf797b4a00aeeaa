// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
	domainerror "github.com/receipt-match/backend/internal/domain/error"
	"github.com/receipt-match/backend/internal/integration/persistence/model"
)

// patternRepository implements the adapter.PatternRepository interface.
type patternRepository struct {
	db *gorm.DB
}

// NewPatternRepository creates a new expense pattern repository instance.
func NewPatternRepository(db *gorm.DB) adapter.PatternRepository {
	return &patternRepository{
		db: db,
	}
}

// Create creates a new expense pattern in the database.
func (r *patternRepository) Create(ctx context.Context, pattern *entity.ExpensePattern) error {
	patternModel := model.ExpensePatternFromEntity(pattern)
	result := r.db.WithContext(ctx).Create(patternModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a pattern by its ID.
func (r *patternRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ExpensePattern, error) {
	var patternModel model.ExpensePatternModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&patternModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewPatternError(
				domainerror.ErrCodePatternNotFound,
				"expense pattern not found",
				domainerror.ErrPatternNotFound,
			)
		}
		return nil, result.Error
	}
	return patternModel.ToEntity(), nil
}

// FindByUserAndVendor retrieves the pattern for a user's normalized vendor.
func (r *patternRepository) FindByUserAndVendor(ctx context.Context, userID uuid.UUID, normalizedVendor string) (*entity.ExpensePattern, error) {
	var patternModel model.ExpensePatternModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND normalized_vendor = ?", userID, normalizedVendor).
		First(&patternModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewPatternError(
				domainerror.ErrCodePatternNotFound,
				"expense pattern not found",
				domainerror.ErrPatternNotFound,
			)
		}
		return nil, result.Error
	}
	return patternModel.ToEntity(), nil
}

// FindByUser retrieves all patterns for a given user.
func (r *patternRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ExpensePattern, error) {
	var patternModels []model.ExpensePatternModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_seen_at DESC").
		Find(&patternModels)
	if result.Error != nil {
		return nil, result.Error
	}

	patterns := make([]*entity.ExpensePattern, len(patternModels))
	for i, pm := range patternModels {
		patterns[i] = pm.ToEntity()
	}
	return patterns, nil
}

// Update updates an existing pattern in the database.
func (r *patternRepository) Update(ctx context.Context, pattern *entity.ExpensePattern) error {
	patternModel := model.ExpensePatternFromEntity(pattern)
	result := r.db.WithContext(ctx).Save(patternModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
