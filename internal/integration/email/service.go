// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/receipt-match/backend/internal/application/adapter"
	"github.com/receipt-match/backend/internal/domain/entity"
	domainerror "github.com/receipt-match/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueMatchDigest queues a digest about newly proposed receipt matches.
func (s *Service) QueueMatchDigest(ctx context.Context, input adapter.QueueMatchDigestInput) error {
	subject := fmt.Sprintf("%d match suggestion(s) for your %s receipt", input.ProposedCount, input.ReceiptVendor)

	templateData := map[string]interface{}{
		"user_name":      input.UserName,
		"receipt_vendor": input.ReceiptVendor,
		"proposed_count": input.ProposedCount,
		"best_score":     input.BestScore,
		"review_url":     s.appBaseURL + "/matches",
	}

	job := entity.NewEmailJob(
		entity.TemplateMatchDigest,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue match digest email",
			err,
		)
	}

	return nil
}

// QueuePredictionDigest queues a digest about newly generated predictions.
func (s *Service) QueuePredictionDigest(ctx context.Context, input adapter.QueuePredictionDigestInput) error {
	subject := fmt.Sprintf("%d expense classification(s) ready for review", input.GeneratedCount)

	templateData := map[string]interface{}{
		"user_name":       input.UserName,
		"generated_count": input.GeneratedCount,
		"review_url":      s.appBaseURL + "/predictions",
	}

	job := entity.NewEmailJob(
		entity.TemplatePredictionDigest,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue prediction digest email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
