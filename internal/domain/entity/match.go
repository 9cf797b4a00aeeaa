// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/domain/valueobject"
)

// MatchStatus represents the lifecycle state of a receipt-transaction match.
type MatchStatus string

const (
	MatchStatusProposed  MatchStatus = "proposed"
	MatchStatusConfirmed MatchStatus = "confirmed"
	MatchStatusRejected  MatchStatus = "rejected"
)

// ReceiptTransactionMatch links a receipt to a transaction or transaction group.
// Match records are never deleted: rejection only changes the status and clears
// the denormalized pointers on the owning candidate, so a rejected pairing can be
// re-proposed by a later scoring pass.
type ReceiptTransactionMatch struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ReceiptID     uuid.UUID
	Target        valueobject.MatchTarget
	Score         int // Total match score at proposal time; 0 for manual matches
	IsManualMatch bool
	Status        MatchStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewProposedMatch creates a match in the proposed state from a scoring pass.
func NewProposedMatch(userID, receiptID uuid.UUID, target valueobject.MatchTarget, score int) *ReceiptTransactionMatch {
	now := time.Now().UTC()
	return &ReceiptTransactionMatch{
		ID:        uuid.New(),
		UserID:    userID,
		ReceiptID: receiptID,
		Target:    target,
		Score:     score,
		Status:    MatchStatusProposed,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewManualMatch creates a user-initiated match, confirmed immediately.
func NewManualMatch(userID, receiptID uuid.UUID, target valueobject.MatchTarget) *ReceiptTransactionMatch {
	now := time.Now().UTC()
	return &ReceiptTransactionMatch{
		ID:            uuid.New(),
		UserID:        userID,
		ReceiptID:     receiptID,
		Target:        target,
		IsManualMatch: true,
		Status:        MatchStatusConfirmed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
