// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/receipt-match/backend/internal/domain/entity"
)

// TransactionGroupModel represents the transaction_groups table in the database.
type TransactionGroupModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	DisplayName      string          `gorm:"type:varchar(255);not null"`
	CombinedAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TransactionCount int             `gorm:"not null"`
	DisplayDate      time.Time       `gorm:"type:date;not null"`
	MatchStatus      string          `gorm:"type:varchar(20);not null;default:'unmatched';index"`
	MatchedReceiptID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`

	User           *UserModel    `gorm:"foreignKey:UserID;references:ID"`
	MatchedReceipt *ReceiptModel `gorm:"foreignKey:MatchedReceiptID;references:ID"`
}

// TableName returns the table name for the TransactionGroupModel.
func (TransactionGroupModel) TableName() string {
	return "transaction_groups"
}

// ToEntity converts a TransactionGroupModel to a domain TransactionGroup entity.
func (m *TransactionGroupModel) ToEntity() *entity.TransactionGroup {
	return &entity.TransactionGroup{
		ID:               m.ID,
		UserID:           m.UserID,
		DisplayName:      m.DisplayName,
		CombinedAmount:   m.CombinedAmount,
		TransactionCount: m.TransactionCount,
		DisplayDate:      m.DisplayDate,
		MatchStatus:      entity.GroupMatchStatus(m.MatchStatus),
		MatchedReceiptID: m.MatchedReceiptID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// TransactionGroupFromEntity creates a TransactionGroupModel from a domain entity.
func TransactionGroupFromEntity(group *entity.TransactionGroup) *TransactionGroupModel {
	return &TransactionGroupModel{
		ID:               group.ID,
		UserID:           group.UserID,
		DisplayName:      group.DisplayName,
		CombinedAmount:   group.CombinedAmount,
		TransactionCount: group.TransactionCount,
		DisplayDate:      group.DisplayDate,
		MatchStatus:      string(group.MatchStatus),
		MatchedReceiptID: group.MatchedReceiptID,
		CreatedAt:        group.CreatedAt,
		UpdatedAt:        group.UpdatedAt,
	}
}
