// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/domain/entity"
)

// PredictionRepository defines the interface for transaction prediction persistence.
type PredictionRepository interface {
	// Create creates a new prediction. The transaction_id column carries a unique
	// constraint; a violation is translated to ErrPredictionExists so concurrent
	// generators cannot produce duplicates.
	Create(ctx context.Context, prediction *entity.TransactionPrediction) error

	// FindByID retrieves a prediction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TransactionPrediction, error)

	// FindByUser retrieves all predictions for a given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.TransactionPrediction, error)

	// ExistsByTransaction checks whether a prediction exists for the transaction.
	ExistsByTransaction(ctx context.Context, transactionID uuid.UUID) (bool, error)

	// Update updates an existing prediction in the database.
	Update(ctx context.Context, prediction *entity.TransactionPrediction) error
}
