// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/domain/entity"
	"github.com/receipt-match/backend/internal/domain/valueobject"
)

// TransactionPredictionModel represents the transaction_predictions table.
// The unique index on TransactionID makes duplicate predictions a database
// error even under concurrent generation passes.
type TransactionPredictionModel struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID               uuid.UUID  `gorm:"type:uuid;not null;index"`
	TransactionID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	PatternID            *uuid.UUID `gorm:"type:uuid;index"`
	ConfidenceScore      float64    `gorm:"type:decimal(5,4);not null"`
	ConfidenceLevel      string     `gorm:"type:varchar(10);not null"`
	Status               string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	IsPersonalPrediction bool       `gorm:"default:false"`
	IsManualOverride     bool       `gorm:"default:false"`
	CreatedAt            time.Time  `gorm:"not null"`
	UpdatedAt            time.Time  `gorm:"not null"`

	Transaction *TransactionModel    `gorm:"foreignKey:TransactionID;references:ID"`
	Pattern     *ExpensePatternModel `gorm:"foreignKey:PatternID;references:ID"`
}

// TableName returns the table name for the TransactionPredictionModel.
func (TransactionPredictionModel) TableName() string {
	return "transaction_predictions"
}

// ToEntity converts a TransactionPredictionModel to a domain entity.
func (m *TransactionPredictionModel) ToEntity() *entity.TransactionPrediction {
	return &entity.TransactionPrediction{
		ID:                   m.ID,
		UserID:               m.UserID,
		TransactionID:        m.TransactionID,
		PatternID:            m.PatternID,
		ConfidenceScore:      m.ConfidenceScore,
		ConfidenceLevel:      valueobject.Confidence(m.ConfidenceLevel),
		Status:               entity.PredictionStatus(m.Status),
		IsPersonalPrediction: m.IsPersonalPrediction,
		IsManualOverride:     m.IsManualOverride,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// TransactionPredictionFromEntity creates a model from a domain entity.
func TransactionPredictionFromEntity(prediction *entity.TransactionPrediction) *TransactionPredictionModel {
	return &TransactionPredictionModel{
		ID:                   prediction.ID,
		UserID:               prediction.UserID,
		TransactionID:        prediction.TransactionID,
		PatternID:            prediction.PatternID,
		ConfidenceScore:      prediction.ConfidenceScore,
		ConfidenceLevel:      string(prediction.ConfidenceLevel),
		Status:               string(prediction.Status),
		IsPersonalPrediction: prediction.IsPersonalPrediction,
		IsManualOverride:     prediction.IsManualOverride,
		CreatedAt:            prediction.CreatedAt,
		UpdatedAt:            prediction.UpdatedAt,
	}
}
