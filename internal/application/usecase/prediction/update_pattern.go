// Package prediction contains expense pattern and prediction use cases.
package prediction

import (
	"context"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
	domainerror "github.com/receipt-match/backend/internal/domain/error"
)

// UpdatePatternInput represents the input for changing a pattern's flags.
// Nil fields are left unchanged.
type UpdatePatternInput struct {
	UserID               uuid.UUID
	PatternID            uuid.UUID
	IsSuppressed         *bool
	RequiresReceiptMatch *bool
}

// UpdatePatternOutput represents the updated pattern.
type UpdatePatternOutput struct {
	Pattern *entity.ExpensePattern
}

// UpdatePatternUseCase toggles the suppression and receipt-requirement flags on
// an expense pattern. Suppressing a pattern stops future prediction generation
// for the vendor; existing predictions are untouched.
type UpdatePatternUseCase struct {
	patternRepo adapter.PatternRepository
}

// NewUpdatePatternUseCase creates a new UpdatePatternUseCase instance.
func NewUpdatePatternUseCase(patternRepo adapter.PatternRepository) *UpdatePatternUseCase {
	return &UpdatePatternUseCase{patternRepo: patternRepo}
}

// Execute applies the requested flag changes.
func (uc *UpdatePatternUseCase) Execute(ctx context.Context, input UpdatePatternInput) (*UpdatePatternOutput, error) {
	pattern, err := uc.patternRepo.FindByID(ctx, input.PatternID)
	if err != nil {
		return nil, err
	}
	if pattern.UserID != input.UserID {
		return nil, domainerror.NewPatternError(
			domainerror.ErrCodePatternNotFound,
			"expense pattern not found",
			domainerror.ErrPatternNotFound,
		)
	}

	if input.IsSuppressed != nil {
		pattern.IsSuppressed = *input.IsSuppressed
	}
	if input.RequiresReceiptMatch != nil {
		pattern.RequiresReceiptMatch = *input.RequiresReceiptMatch
	}

	if err := uc.patternRepo.Update(ctx, pattern); err != nil {
		return nil, err
	}

	return &UpdatePatternOutput{Pattern: pattern}, nil
}
