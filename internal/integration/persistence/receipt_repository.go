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

// receiptRepository implements the adapter.ReceiptRepository interface.
type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository instance.
func NewReceiptRepository(db *gorm.DB) adapter.ReceiptRepository {
	return &receiptRepository{
		db: db,
	}
}

// Create creates a new receipt in the database.
func (r *receiptRepository) Create(ctx context.Context, receipt *entity.Receipt) error {
	receiptModel := model.ReceiptFromEntity(receipt)
	result := r.db.WithContext(ctx).Create(receiptModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a receipt by its ID.
func (r *receiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receiptModel model.ReceiptModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&receiptModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewMatchError(
				domainerror.ErrCodeReceiptNotFound,
				"receipt not found",
				domainerror.ErrReceiptNotFound,
			)
		}
		return nil, result.Error
	}
	return receiptModel.ToEntity(), nil
}

// FindByUser retrieves all receipts for a given user, newest first.
func (r *receiptRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Receipt, error) {
	var receiptModels []model.ReceiptModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&receiptModels)
	if result.Error != nil {
		return nil, result.Error
	}

	receipts := make([]*entity.Receipt, len(receiptModels))
	for i, rm := range receiptModels {
		receipts[i] = rm.ToEntity()
	}
	return receipts, nil
}

// Update updates an existing receipt in the database.
func (r *receiptRepository) Update(ctx context.Context, receipt *entity.Receipt) error {
	receiptModel := model.ReceiptFromEntity(receipt)
	result := r.db.WithContext(ctx).Save(receiptModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a receipt from the database.
func (r *receiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ReceiptModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
