// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a bank or card transaction imported for a user.
// A transaction that belongs to a TransactionGroup (GroupID set) is only ever
// matched through its group, never individually.
type Transaction struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Date             time.Time
	Description      string
	Amount           decimal.Decimal
	GroupID          *uuid.UUID // Owning group; nil = ungrouped
	MatchedReceiptID *uuid.UUID // Denormalized pointer to the confirmed receipt match
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(userID uuid.UUID, date time.Time, description string, amount decimal.Decimal) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		Description: description,
		Amount:      amount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsGrouped reports whether the transaction belongs to a transaction group.
func (t *Transaction) IsGrouped() bool {
	return t.GroupID != nil
}
