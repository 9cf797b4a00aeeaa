// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExpensePattern holds rolling confirm/reject statistics for one normalized
// vendor of one user. Patterns are never deleted once created, only suppressed.
// The business/personal classification is derived from the counters by
// valueobject.Classify rather than stored.
type ExpensePattern struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	NormalizedVendor     string // Unique per user
	ConfirmCount         int
	RejectCount          int
	OccurrenceCount      int
	IsSuppressed         bool
	RequiresReceiptMatch bool
	LastSeenAt           time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewExpensePattern creates a pattern for a vendor the system has not seen before.
func NewExpensePattern(userID uuid.UUID, normalizedVendor string) *ExpensePattern {
	now := time.Now().UTC()
	return &ExpensePattern{
		ID:               uuid.New(),
		UserID:           userID,
		NormalizedVendor: normalizedVendor,
		LastSeenAt:       now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// RecordConfirm applies a user confirmation to the rolling counters.
func (p *ExpensePattern) RecordConfirm() {
	p.ConfirmCount++
	p.OccurrenceCount++
	p.LastSeenAt = time.Now().UTC()
}

// RecordReject applies a user rejection to the rolling counters.
func (p *ExpensePattern) RecordReject() {
	p.RejectCount++
	p.OccurrenceCount++
	p.LastSeenAt = time.Now().UTC()
}
