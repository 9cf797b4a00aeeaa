// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/receipt-match/backend/internal/application/usecase/prediction"
	"github.com/receipt-match/backend/internal/domain/entity"
)

// UpdatePatternRequest represents the request body for pattern settings updates.
// Omitted fields are left untouched.
type UpdatePatternRequest struct {
	IsSuppressed         *bool `json:"is_suppressed,omitempty"`
	RequiresReceiptMatch *bool `json:"requires_receipt_match,omitempty"`
}

// GeneratePredictionsRequest represents the optional request body for a
// generation pass. Without transaction_ids the pass covers every transaction
// the user owns.
type GeneratePredictionsRequest struct {
	TransactionIDs []string `json:"transaction_ids,omitempty" binding:"omitempty,dive,uuid"`
}

// CreateManualOverrideRequest represents the request body for a manual
// business-expense override on a transaction.
type CreateManualOverrideRequest struct {
	TransactionID string `json:"transaction_id" binding:"required,uuid"`
}

// PredictionResponse represents a single prediction in API responses.
type PredictionResponse struct {
	ID                   string    `json:"id"`
	TransactionID        string    `json:"transaction_id"`
	PatternID            *string   `json:"pattern_id,omitempty"`
	ConfidenceScore      float64   `json:"confidence_score"`
	ConfidenceLevel      string    `json:"confidence_level"`
	Status               string    `json:"status"`
	IsPersonalPrediction bool      `json:"is_personal_prediction"`
	IsManualOverride     bool      `json:"is_manual_override"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// PredictionListResponse represents the response for listing predictions.
type PredictionListResponse struct {
	Predictions []PredictionResponse `json:"predictions"`
}

// GeneratePredictionsResponse represents the result of a generation pass.
type GeneratePredictionsResponse struct {
	Generated []PredictionResponse `json:"generated"`
	Skipped   int                  `json:"skipped"`
}

// PatternResponse represents a single expense pattern in API responses.
type PatternResponse struct {
	ID                   string    `json:"id"`
	NormalizedVendor     string    `json:"normalized_vendor"`
	Classification       string    `json:"classification"`
	ConfirmCount         int       `json:"confirm_count"`
	RejectCount          int       `json:"reject_count"`
	OccurrenceCount      int       `json:"occurrence_count"`
	IsSuppressed         bool      `json:"is_suppressed"`
	RequiresReceiptMatch bool      `json:"requires_receipt_match"`
	LastSeenAt           time.Time `json:"last_seen_at"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// PatternListResponse represents the response for listing expense patterns.
type PatternListResponse struct {
	Patterns []PatternResponse `json:"patterns"`
}

// ToPredictionResponse converts a domain prediction to a PredictionResponse DTO.
func ToPredictionResponse(p *entity.TransactionPrediction) PredictionResponse {
	response := PredictionResponse{
		ID:                   p.ID.String(),
		TransactionID:        p.TransactionID.String(),
		ConfidenceScore:      p.ConfidenceScore,
		ConfidenceLevel:      string(p.ConfidenceLevel),
		Status:               string(p.Status),
		IsPersonalPrediction: p.IsPersonalPrediction,
		IsManualOverride:     p.IsManualOverride,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
	if p.PatternID != nil {
		id := p.PatternID.String()
		response.PatternID = &id
	}
	return response
}

// ToPatternResponse converts a pattern summary to a PatternResponse DTO.
func ToPatternResponse(summary prediction.PatternSummary) PatternResponse {
	p := summary.Pattern
	return PatternResponse{
		ID:                   p.ID.String(),
		NormalizedVendor:     p.NormalizedVendor,
		Classification:       string(summary.Classification),
		ConfirmCount:         p.ConfirmCount,
		RejectCount:          p.RejectCount,
		OccurrenceCount:      p.OccurrenceCount,
		IsSuppressed:         p.IsSuppressed,
		RequiresReceiptMatch: p.RequiresReceiptMatch,
		LastSeenAt:           p.LastSeenAt,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}
