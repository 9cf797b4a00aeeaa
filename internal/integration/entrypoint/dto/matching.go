// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/receipt-match/backend/internal/application/usecase/matching"
	"github.com/receipt-match/backend/internal/domain/entity"
)

// CreateManualMatchRequest represents the request body for a manual match.
// Exactly one of transaction_id and group_id must be set.
type CreateManualMatchRequest struct {
	TransactionID *string `json:"transaction_id,omitempty"`
	GroupID       *string `json:"group_id,omitempty"`
}

// ScoreBreakdownResponse represents the component scores of one candidate.
type ScoreBreakdownResponse struct {
	AmountScore int `json:"amount_score"`
	DateScore   int `json:"date_score"`
	VendorScore int `json:"vendor_score"`
	Total       int `json:"total"`
}

// CandidateResponse represents one scored candidate for a receipt.
type CandidateResponse struct {
	TargetType    string                 `json:"target_type"`
	TransactionID *string                `json:"transaction_id,omitempty"`
	GroupID       *string                `json:"group_id,omitempty"`
	Description   string                 `json:"description"`
	Amount        string                 `json:"amount"`
	Date          string                 `json:"date"`
	Score         ScoreBreakdownResponse `json:"score"`
}

// CandidateListResponse represents the scored candidate pool for a receipt.
type CandidateListResponse struct {
	Candidates []CandidateResponse `json:"candidates"`
}

// MatchResponse represents a single match record in API responses.
type MatchResponse struct {
	ID            string    `json:"id"`
	ReceiptID     string    `json:"receipt_id"`
	TransactionID *string   `json:"transaction_id,omitempty"`
	GroupID       *string   `json:"group_id,omitempty"`
	Score         int       `json:"score"`
	IsManualMatch bool      `json:"is_manual_match"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MatchListResponse represents the response for listing proposed matches.
type MatchListResponse struct {
	Matches []MatchResponse `json:"matches"`
}

// ToMatchResponse converts a domain match entity to a MatchResponse DTO.
func ToMatchResponse(match *entity.ReceiptTransactionMatch) MatchResponse {
	response := MatchResponse{
		ID:            match.ID.String(),
		ReceiptID:     match.ReceiptID.String(),
		Score:         match.Score,
		IsManualMatch: match.IsManualMatch,
		Status:        string(match.Status),
		CreatedAt:     match.CreatedAt,
		UpdatedAt:     match.UpdatedAt,
	}
	targetID := match.Target.ID().String()
	if match.Target.IsGroup() {
		response.GroupID = &targetID
	} else {
		response.TransactionID = &targetID
	}
	return response
}

// ToCandidateResponse converts a scored candidate to a CandidateResponse DTO.
func ToCandidateResponse(sc matching.ScoredCandidate) CandidateResponse {
	response := CandidateResponse{
		Description: sc.Candidate.VendorText(),
		Amount:      sc.Candidate.Amount().String(),
		Date:        sc.Candidate.Date().Format("2006-01-02"),
		Score: ScoreBreakdownResponse{
			AmountScore: sc.Score.AmountScore,
			DateScore:   sc.Score.DateScore,
			VendorScore: sc.Score.VendorScore,
			Total:       sc.Score.Total,
		},
	}
	if sc.Candidate.IsGroup() {
		id := sc.Candidate.Group.ID.String()
		response.TargetType = "group"
		response.GroupID = &id
	} else {
		id := sc.Candidate.Transaction.ID.String()
		response.TargetType = "transaction"
		response.TransactionID = &id
	}
	return response
}
