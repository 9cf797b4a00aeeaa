// Package prediction contains expense pattern and prediction use cases.
package prediction

import (
	"context"

	"github.com/google/uuid"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
	"github.com/receipt-match/backend/internal/domain/valueobject"
)

// ListPatternsInput represents the input for listing a user's expense patterns.
type ListPatternsInput struct {
	UserID uuid.UUID
}

// PatternSummary pairs a pattern with its derived classification.
type PatternSummary struct {
	Pattern        *entity.ExpensePattern
	Classification valueobject.Classification
}

// ListPatternsOutput represents the user's patterns with derived labels.
type ListPatternsOutput struct {
	Patterns []PatternSummary
}

// ListPatternsUseCase lists a user's expense patterns. The classification is
// derived from the counters at read time, never stored.
type ListPatternsUseCase struct {
	patternRepo adapter.PatternRepository
}

// NewListPatternsUseCase creates a new ListPatternsUseCase instance.
func NewListPatternsUseCase(patternRepo adapter.PatternRepository) *ListPatternsUseCase {
	return &ListPatternsUseCase{patternRepo: patternRepo}
}

// Execute lists the patterns with their current classifications.
func (uc *ListPatternsUseCase) Execute(ctx context.Context, input ListPatternsInput) (*ListPatternsOutput, error) {
	patterns, err := uc.patternRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	summaries := make([]PatternSummary, 0, len(patterns))
	for _, pattern := range patterns {
		classification, err := valueobject.Classify(pattern.ConfirmCount, pattern.RejectCount)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, PatternSummary{
			Pattern:        pattern,
			Classification: classification,
		})
	}

	return &ListPatternsOutput{Patterns: summaries}, nil
}
