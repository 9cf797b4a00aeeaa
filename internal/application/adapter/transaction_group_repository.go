// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/domain/entity"
)

// TransactionGroupRepository defines the interface for transaction group persistence.
type TransactionGroupRepository interface {
	// Create creates a new transaction group in the database.
	Create(ctx context.Context, group *entity.TransactionGroup) error

	// FindByID retrieves a transaction group by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TransactionGroup, error)

	// FindByUser retrieves all transaction groups for a given user, regardless of
	// match status, so rejected pairings can be re-evaluated.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.TransactionGroup, error)

	// Update updates an existing transaction group in the database.
	Update(ctx context.Context, group *entity.TransactionGroup) error

	// AssignTransactions sets the owning group on the given transactions.
	AssignTransactions(ctx context.Context, groupID uuid.UUID, transactionIDs []uuid.UUID) (int, error)
}
