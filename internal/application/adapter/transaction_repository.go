// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByIDs retrieves the transactions for the given IDs, ownership-checked.
	FindByIDs(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) ([]*entity.Transaction, error)

	// FindByUser retrieves all transactions for a given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// FindUngroupedByUser retrieves the user's transactions that do not belong to
	// any transaction group. These are the individually matchable candidates.
	FindUngroupedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// ClearMatchedReceipt clears the denormalized matched-receipt pointer.
	ClearMatchedReceipt(ctx context.Context, id uuid.UUID) error
}
