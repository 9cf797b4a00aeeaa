// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/domain/entity"
)

// ReceiptRepository defines the interface for receipt persistence operations.
type ReceiptRepository interface {
	// Create creates a new receipt in the database.
	Create(ctx context.Context, receipt *entity.Receipt) error

	// FindByID retrieves a receipt by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)

	// FindByUser retrieves all receipts for a given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Receipt, error)

	// Update updates an existing receipt in the database.
	Update(ctx context.Context, receipt *entity.Receipt) error

	// Delete soft-deletes a receipt from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
