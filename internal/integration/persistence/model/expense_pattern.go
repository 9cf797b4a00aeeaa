// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/domain/entity"
)

// ExpensePatternModel represents the expense_patterns table in the database.
// One row per (user, normalized vendor); the composite unique index enforces it.
type ExpensePatternModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID               uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_patterns_user_vendor"`
	NormalizedVendor     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_patterns_user_vendor"`
	ConfirmCount         int       `gorm:"not null;default:0"`
	RejectCount          int       `gorm:"not null;default:0"`
	OccurrenceCount      int       `gorm:"not null;default:0"`
	IsSuppressed         bool      `gorm:"default:false"`
	RequiresReceiptMatch bool      `gorm:"default:false"`
	LastSeenAt           time.Time `gorm:"not null"`
	CreatedAt            time.Time `gorm:"not null"`
	UpdatedAt            time.Time `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the ExpensePatternModel.
func (ExpensePatternModel) TableName() string {
	return "expense_patterns"
}

// ToEntity converts an ExpensePatternModel to a domain ExpensePattern entity.
func (m *ExpensePatternModel) ToEntity() *entity.ExpensePattern {
	return &entity.ExpensePattern{
		ID:                   m.ID,
		UserID:               m.UserID,
		NormalizedVendor:     m.NormalizedVendor,
		ConfirmCount:         m.ConfirmCount,
		RejectCount:          m.RejectCount,
		OccurrenceCount:      m.OccurrenceCount,
		IsSuppressed:         m.IsSuppressed,
		RequiresReceiptMatch: m.RequiresReceiptMatch,
		LastSeenAt:           m.LastSeenAt,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// ExpensePatternFromEntity creates an ExpensePatternModel from a domain entity.
func ExpensePatternFromEntity(pattern *entity.ExpensePattern) *ExpensePatternModel {
	return &ExpensePatternModel{
		ID:                   pattern.ID,
		UserID:               pattern.UserID,
		NormalizedVendor:     pattern.NormalizedVendor,
		ConfirmCount:         pattern.ConfirmCount,
		RejectCount:          pattern.RejectCount,
		OccurrenceCount:      pattern.OccurrenceCount,
		IsSuppressed:         pattern.IsSuppressed,
		RequiresReceiptMatch: pattern.RequiresReceiptMatch,
		LastSeenAt:           pattern.LastSeenAt,
		CreatedAt:            pattern.CreatedAt,
		UpdatedAt:            pattern.UpdatedAt,
	}
}
