// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/receipt-match/backend/internal/domain/entity"
)

// CreateReceiptRequest represents the request body for receipt creation.
type CreateReceiptRequest struct {
	Date       string  `json:"date" binding:"required"`
	VendorText string  `json:"vendor_text" binding:"required,min=1,max=255"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Notes      string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// ReceiptResponse represents a single receipt in API responses.
type ReceiptResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Date       string    `json:"date"`
	VendorText string    `json:"vendor_text"`
	Amount     string    `json:"amount"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ReceiptListResponse represents the response for listing receipts.
type ReceiptListResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
}

// ToReceiptResponse converts a domain Receipt entity to a ReceiptResponse DTO.
func ToReceiptResponse(receipt *entity.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:         receipt.ID.String(),
		UserID:     receipt.UserID.String(),
		Date:       receipt.Date.Format("2006-01-02"),
		VendorText: receipt.VendorText,
		Amount:     receipt.Amount.String(),
		Notes:      receipt.Notes,
		CreatedAt:  receipt.CreatedAt,
		UpdatedAt:  receipt.UpdatedAt,
	}
}
