// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GroupMatchStatus represents the match state of a transaction group.
type GroupMatchStatus string

const (
	GroupMatchStatusUnmatched GroupMatchStatus = "unmatched"
	GroupMatchStatusProposed  GroupMatchStatus = "proposed"
	GroupMatchStatusMatched   GroupMatchStatus = "matched"
)

// TransactionGroup represents a pre-aggregated set of transactions treated as a
// single matching candidate (e.g. several charges from the same vendor rolled up
// into "TWILIO (3 charges)").
type TransactionGroup struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	DisplayName      string // Raw label, possibly carrying a "(N charges)" suffix
	CombinedAmount   decimal.Decimal
	TransactionCount int
	DisplayDate      time.Time
	MatchStatus      GroupMatchStatus
	MatchedReceiptID *uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewTransactionGroup creates a new TransactionGroup entity.
func NewTransactionGroup(
	userID uuid.UUID,
	displayName string,
	combinedAmount decimal.Decimal,
	transactionCount int,
	displayDate time.Time,
) *TransactionGroup {
	now := time.Now().UTC()
	return &TransactionGroup{
		ID:               uuid.New(),
		UserID:           userID,
		DisplayName:      displayName,
		CombinedAmount:   combinedAmount,
		TransactionCount: transactionCount,
		DisplayDate:      displayDate,
		MatchStatus:      GroupMatchStatusUnmatched,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
