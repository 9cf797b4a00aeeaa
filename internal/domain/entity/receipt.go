// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Receipt represents a purchase receipt uploaded by a user.
// Receipts are immutable once matched; matching never mutates the receipt itself.
type Receipt struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Date       time.Time
	VendorText string // Free-text vendor line as captured from the receipt
	Amount     decimal.Decimal
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft-delete support
}

// NewReceipt creates a new Receipt entity.
func NewReceipt(userID uuid.UUID, date time.Time, vendorText string, amount decimal.Decimal, notes string) *Receipt {
	now := time.Now().UTC()
	return &Receipt{
		ID:         uuid.New(),
		UserID:     userID,
		Date:       date,
		VendorText: vendorText,
		Amount:     amount,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
