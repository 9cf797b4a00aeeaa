// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/domain/valueobject"
)

// PredictionStatus represents the review state of a transaction prediction.
type PredictionStatus string

const (
	PredictionStatusPending   PredictionStatus = "pending"
	PredictionStatusConfirmed PredictionStatus = "confirmed"
	PredictionStatusRejected  PredictionStatus = "rejected"
)

// TransactionPrediction is a generated (or manually overridden) business/personal
// call for a single transaction. At most one prediction exists per transaction;
// the persistence layer enforces this with a unique constraint.
type TransactionPrediction struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	TransactionID        uuid.UUID
	PatternID            *uuid.UUID // nil for manual overrides
	ConfidenceScore      float64
	ConfidenceLevel      valueobject.Confidence
	Status               PredictionStatus
	IsPersonalPrediction bool
	IsManualOverride     bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewPatternPrediction creates a prediction backed by an expense pattern.
func NewPatternPrediction(
	userID, transactionID, patternID uuid.UUID,
	score float64,
	level valueobject.Confidence,
	isPersonal bool,
) *TransactionPrediction {
	now := time.Now().UTC()
	return &TransactionPrediction{
		ID:                   uuid.New(),
		UserID:               userID,
		TransactionID:        transactionID,
		PatternID:            &patternID,
		ConfidenceScore:      score,
		ConfidenceLevel:      level,
		Status:               PredictionStatusPending,
		IsPersonalPrediction: isPersonal,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// NewManualOverridePrediction creates a prediction entered directly by the user.
// Manual overrides have no backing pattern and default to a business call.
func NewManualOverridePrediction(userID, transactionID uuid.UUID) *TransactionPrediction {
	now := time.Now().UTC()
	return &TransactionPrediction{
		ID:               uuid.New(),
		UserID:           userID,
		TransactionID:    transactionID,
		ConfidenceScore:  1.0,
		ConfidenceLevel:  valueobject.ConfidenceHigh,
		Status:           PredictionStatusConfirmed,
		IsManualOverride: true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
