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

// matchRepository implements the adapter.MatchRepository interface.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository instance.
func NewMatchRepository(db *gorm.DB) adapter.MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// Create creates a new match record in the database.
func (r *matchRepository) Create(ctx context.Context, match *entity.ReceiptTransactionMatch) error {
	matchModel := model.ReceiptMatchFromEntity(match)
	result := r.db.WithContext(ctx).Create(matchModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a match by its ID.
func (r *matchRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ReceiptTransactionMatch, error) {
	var matchModel model.ReceiptMatchModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&matchModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewMatchError(
				domainerror.ErrCodeMatchNotFound,
				"match not found",
				domainerror.ErrMatchNotFound,
			)
		}
		return nil, result.Error
	}
	return matchModel.ToEntity()
}

// FindByReceipt retrieves all match records for a receipt, newest first.
func (r *matchRepository) FindByReceipt(ctx context.Context, receiptID uuid.UUID) ([]*entity.ReceiptTransactionMatch, error) {
	var matchModels []model.ReceiptMatchModel
	result := r.db.WithContext(ctx).
		Where("receipt_id = ?", receiptID).
		Order("created_at DESC").
		Find(&matchModels)
	if result.Error != nil {
		return nil, result.Error
	}

	matches := make([]*entity.ReceiptTransactionMatch, 0, len(matchModels))
	for _, mm := range matchModels {
		match, err := mm.ToEntity()
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	return matches, nil
}

// Update updates an existing match record in the database.
func (r *matchRepository) Update(ctx context.Context, match *entity.ReceiptTransactionMatch) error {
	matchModel := model.ReceiptMatchFromEntity(match)
	result := r.db.WithContext(ctx).Save(matchModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// HasOpenMatchForTarget reports whether a proposed or confirmed match already
// references the given transaction or group.
func (r *matchRepository) HasOpenMatchForTarget(ctx context.Context, target adapter.TargetRef) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.ReceiptMatchModel{}).
		Where("status IN ?", []string{
			string(entity.MatchStatusProposed),
			string(entity.MatchStatusConfirmed),
		})

	switch {
	case target.TransactionID != nil:
		query = query.Where("transaction_id = ?", *target.TransactionID)
	case target.GroupID != nil:
		query = query.Where("group_id = ?", *target.GroupID)
	default:
		return false, domainerror.NewMatchError(
			domainerror.ErrCodeMissingMatchTarget,
			"target reference is empty",
			domainerror.ErrMissingMatchTarget,
		)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// HasConfirmedMatchForTransaction reports whether the transaction has a
// confirmed receipt match, directly or through its owning group.
func (r *matchRepository) HasConfirmedMatchForTransaction(ctx context.Context, transactionID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ReceiptMatchModel{}).
		Where("status = ?", string(entity.MatchStatusConfirmed)).
		Where(
			"transaction_id = ? OR group_id = (SELECT group_id FROM transactions WHERE id = ? AND group_id IS NOT NULL)",
			transactionID, transactionID,
		).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
