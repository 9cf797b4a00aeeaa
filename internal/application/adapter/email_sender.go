// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing digest emails. Queueing
// failures are logged by callers, never surfaced to the producing operation.
type EmailService interface {
	// QueueMatchDigest queues a digest about newly proposed receipt matches.
	QueueMatchDigest(ctx context.Context, input QueueMatchDigestInput) error

	// QueuePredictionDigest queues a digest about newly generated predictions.
	QueuePredictionDigest(ctx context.Context, input QueuePredictionDigestInput) error
}

// QueueMatchDigestInput represents the input for queueing a match digest email.
type QueueMatchDigestInput struct {
	UserEmail     string
	UserName      string
	ReceiptVendor string
	ProposedCount int
	BestScore     int
}

// QueuePredictionDigestInput represents the input for queueing a prediction digest email.
type QueuePredictionDigestInput struct {
	UserEmail      string
	UserName       string
	GeneratedCount int
}
