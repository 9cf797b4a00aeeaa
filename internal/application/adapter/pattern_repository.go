// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/domain/entity"
)

// PatternRepository defines the interface for expense pattern persistence operations.
type PatternRepository interface {
	// Create creates a new expense pattern in the database.
	Create(ctx context.Context, pattern *entity.ExpensePattern) error

	// FindByID retrieves a pattern by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ExpensePattern, error)

	// FindByUserAndVendor retrieves the pattern for a user's normalized vendor.
	// Returns ErrPatternNotFound when the vendor has no pattern yet.
	FindByUserAndVendor(ctx context.Context, userID uuid.UUID, normalizedVendor string) (*entity.ExpensePattern, error)

	// FindByUser retrieves all patterns for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ExpensePattern, error)

	// Update updates an existing pattern in the database.
	Update(ctx context.Context, pattern *entity.ExpensePattern) error
}
