// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/receipt-match/backend/internal/domain/entity"
)

// CreateGroupRequest represents the request body for transaction group creation.
type CreateGroupRequest struct {
	DisplayName    string   `json:"display_name" binding:"required,min=1,max=255"`
	TransactionIDs []string `json:"transaction_ids" binding:"required,min=1"`
}

// GroupResponse represents a single transaction group in API responses.
type GroupResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	DisplayName      string    `json:"display_name"`
	CombinedAmount   string    `json:"combined_amount"`
	TransactionCount int       `json:"transaction_count"`
	DisplayDate      string    `json:"display_date"`
	MatchStatus      string    `json:"match_status"`
	MatchedReceiptID *string   `json:"matched_receipt_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// GroupListResponse represents the response for listing transaction groups.
type GroupListResponse struct {
	Groups []GroupResponse `json:"groups"`
}

// ToGroupResponse converts a domain TransactionGroup entity to a GroupResponse DTO.
func ToGroupResponse(group *entity.TransactionGroup) GroupResponse {
	response := GroupResponse{
		ID:               group.ID.String(),
		UserID:           group.UserID.String(),
		DisplayName:      group.DisplayName,
		CombinedAmount:   group.CombinedAmount.String(),
		TransactionCount: group.TransactionCount,
		DisplayDate:      group.DisplayDate.Format("2006-01-02"),
		MatchStatus:      string(group.MatchStatus),
		CreatedAt:        group.CreatedAt,
		UpdatedAt:        group.UpdatedAt,
	}
	if group.MatchedReceiptID != nil {
		id := group.MatchedReceiptID.String()
		response.MatchedReceiptID = &id
	}
	return response
}
