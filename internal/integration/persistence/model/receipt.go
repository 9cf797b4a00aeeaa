// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/receipt-match/backend/internal/domain/entity"
)

// ReceiptModel represents the receipts table in the database.
type ReceiptModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date       time.Time       `gorm:"type:date;not null;index"`
	VendorText string          `gorm:"type:varchar(255);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Notes      string          `gorm:"type:text"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
	DeletedAt  gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the ReceiptModel.
func (ReceiptModel) TableName() string {
	return "receipts"
}

// ToEntity converts a ReceiptModel to a domain Receipt entity.
func (m *ReceiptModel) ToEntity() *entity.Receipt {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Receipt{
		ID:         m.ID,
		UserID:     m.UserID,
		Date:       m.Date,
		VendorText: m.VendorText,
		Amount:     m.Amount,
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}

// ReceiptFromEntity creates a ReceiptModel from a domain Receipt entity.
func ReceiptFromEntity(receipt *entity.Receipt) *ReceiptModel {
	var deletedAt gorm.DeletedAt
	if receipt.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *receipt.DeletedAt, Valid: true}
	}

	return &ReceiptModel{
		ID:         receipt.ID,
		UserID:     receipt.UserID,
		Date:       receipt.Date,
		VendorText: receipt.VendorText,
		Amount:     receipt.Amount,
		Notes:      receipt.Notes,
		CreatedAt:  receipt.CreatedAt,
		UpdatedAt:  receipt.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}
