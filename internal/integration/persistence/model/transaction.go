// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/receipt-match/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date             time.Time       `gorm:"type:date;not null;index"`
	Description      string          `gorm:"type:varchar(255);not null"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	GroupID          *uuid.UUID      `gorm:"type:uuid;index"`
	MatchedReceiptID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
	DeletedAt        gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	User           *UserModel             `gorm:"foreignKey:UserID;references:ID"`
	Group          *TransactionGroupModel `gorm:"foreignKey:GroupID;references:ID"`
	MatchedReceipt *ReceiptModel          `gorm:"foreignKey:MatchedReceiptID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Transaction{
		ID:               m.ID,
		UserID:           m.UserID,
		Date:             m.Date,
		Description:      m.Description,
		Amount:           m.Amount,
		GroupID:          m.GroupID,
		MatchedReceiptID: m.MatchedReceiptID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		DeletedAt:        deletedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	var deletedAt gorm.DeletedAt
	if transaction.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *transaction.DeletedAt, Valid: true}
	}

	return &TransactionModel{
		ID:               transaction.ID,
		UserID:           transaction.UserID,
		Date:             transaction.Date,
		Description:      transaction.Description,
		Amount:           transaction.Amount,
		GroupID:          transaction.GroupID,
		MatchedReceiptID: transaction.MatchedReceiptID,
		CreatedAt:        transaction.CreatedAt,
		UpdatedAt:        transaction.UpdatedAt,
		DeletedAt:        deletedAt,
	}
}
