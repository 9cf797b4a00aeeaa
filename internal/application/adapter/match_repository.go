// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/domain/entity"
)

// MatchRepository defines the interface for receipt-transaction match persistence.
// Match records are append-and-update only; rejection flips status, it never deletes.
type MatchRepository interface {
	// Create creates a new match record in the database.
	Create(ctx context.Context, match *entity.ReceiptTransactionMatch) error

	// FindByID retrieves a match by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ReceiptTransactionMatch, error)

	// FindByReceipt retrieves all match records for a receipt, newest first.
	FindByReceipt(ctx context.Context, receiptID uuid.UUID) ([]*entity.ReceiptTransactionMatch, error)

	// Update updates an existing match record in the database.
	Update(ctx context.Context, match *entity.ReceiptTransactionMatch) error

	// HasOpenMatchForTarget reports whether a proposed or confirmed match already
	// references the given transaction or group.
	HasOpenMatchForTarget(ctx context.Context, target TargetRef) (bool, error)

	// HasConfirmedMatchForTransaction reports whether the transaction has a
	// confirmed receipt match, directly or through its owning group.
	HasConfirmedMatchForTransaction(ctx context.Context, transactionID uuid.UUID) (bool, error)
}

// TargetRef identifies a match target for repository queries.
type TargetRef struct {
	TransactionID *uuid.UUID
	GroupID       *uuid.UUID
}
