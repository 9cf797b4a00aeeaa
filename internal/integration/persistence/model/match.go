// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/domain/entity"
	"github.com/receipt-match/backend/internal/domain/valueobject"
)

// ReceiptMatchModel represents the receipt_matches table in the database.
// Exactly one of TransactionID and GroupID is set; the check constraint keeps
// the rows honest, the MatchTarget constructor keeps the code honest.
type ReceiptMatchModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReceiptID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	TransactionID *uuid.UUID `gorm:"type:uuid;index"`
	GroupID       *uuid.UUID `gorm:"type:uuid;index"`
	Score         int        `gorm:"not null;default:0"`
	IsManualMatch bool       `gorm:"default:false"`
	Status        string     `gorm:"type:varchar(20);not null;default:'proposed';index"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`

	Receipt     *ReceiptModel          `gorm:"foreignKey:ReceiptID;references:ID"`
	Transaction *TransactionModel      `gorm:"foreignKey:TransactionID;references:ID"`
	Group       *TransactionGroupModel `gorm:"foreignKey:GroupID;references:ID"`
}

// TableName returns the table name for the ReceiptMatchModel.
func (ReceiptMatchModel) TableName() string {
	return "receipt_matches"
}

// ToEntity converts a ReceiptMatchModel to a domain ReceiptTransactionMatch entity.
func (m *ReceiptMatchModel) ToEntity() (*entity.ReceiptTransactionMatch, error) {
	target, err := valueobject.NewMatchTarget(m.TransactionID, m.GroupID)
	if err != nil {
		return nil, err
	}

	return &entity.ReceiptTransactionMatch{
		ID:            m.ID,
		UserID:        m.UserID,
		ReceiptID:     m.ReceiptID,
		Target:        target,
		Score:         m.Score,
		IsManualMatch: m.IsManualMatch,
		Status:        entity.MatchStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}

// ReceiptMatchFromEntity creates a ReceiptMatchModel from a domain entity.
func ReceiptMatchFromEntity(match *entity.ReceiptTransactionMatch) *ReceiptMatchModel {
	m := &ReceiptMatchModel{
		ID:            match.ID,
		UserID:        match.UserID,
		ReceiptID:     match.ReceiptID,
		Score:         match.Score,
		IsManualMatch: match.IsManualMatch,
		Status:        string(match.Status),
		CreatedAt:     match.CreatedAt,
		UpdatedAt:     match.UpdatedAt,
	}

	id := match.Target.ID()
	if match.Target.IsGroup() {
		m.GroupID = &id
	} else {
		m.TransactionID = &id
	}
	return m
}
