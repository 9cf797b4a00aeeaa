// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
	domainerror "github.com/receipt-match/backend/internal/domain/error"
	"github.com/receipt-match/backend/internal/integration/persistence/model"
)

// transactionGroupRepository implements the adapter.TransactionGroupRepository interface.
type transactionGroupRepository struct {
	db *gorm.DB
}

// NewTransactionGroupRepository creates a new transaction group repository instance.
func NewTransactionGroupRepository(db *gorm.DB) adapter.TransactionGroupRepository {
	return &transactionGroupRepository{
		db: db,
	}
}

// Create creates a new transaction group in the database.
func (r *transactionGroupRepository) Create(ctx context.Context, group *entity.TransactionGroup) error {
	groupModel := model.TransactionGroupFromEntity(group)
	result := r.db.WithContext(ctx).Create(groupModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction group by its ID.
func (r *transactionGroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TransactionGroup, error) {
	var groupModel model.TransactionGroupModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&groupModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewMatchError(
				domainerror.ErrCodeGroupNotFound,
				"transaction group not found",
				domainerror.ErrGroupNotFound,
			)
		}
		return nil, result.Error
	}
	return groupModel.ToEntity(), nil
}

// FindByUser retrieves all transaction groups for a given user.
func (r *transactionGroupRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.TransactionGroup, error) {
	var groupModels []model.TransactionGroupModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("display_date DESC, created_at DESC").
		Find(&groupModels)
	if result.Error != nil {
		return nil, result.Error
	}

	groups := make([]*entity.TransactionGroup, len(groupModels))
	for i, gm := range groupModels {
		groups[i] = gm.ToEntity()
	}
	return groups, nil
}

// Update updates an existing transaction group in the database.
func (r *transactionGroupRepository) Update(ctx context.Context, group *entity.TransactionGroup) error {
	groupModel := model.TransactionGroupFromEntity(group)
	result := r.db.WithContext(ctx).Save(groupModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// AssignTransactions sets the owning group on the given transactions.
func (r *transactionGroupRepository) AssignTransactions(ctx context.Context, groupID uuid.UUID, transactionIDs []uuid.UUID) (int, error) {
	var assigned int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.TransactionModel{}).
			Where("id IN ?", transactionIDs).
			Updates(map[string]interface{}{
				"group_id":   groupID,
				"updated_at": time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		assigned = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(assigned), nil
}
