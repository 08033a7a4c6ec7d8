// Package notify delivers best-effort notifications for accepted contact
// submissions. Delivery happens after the submission is durable; failures are
// logged here and never propagate to the submitting visitor.
package notify

import (
	"context"
	"log/slog"

	"github.com/folio/backend/internal/model"
)

// Notifier is the collaborator contract consumed by the ingestion pipeline.
type Notifier interface {
	// Notify announces a persisted submission. Implementations log their own
	// failures; callers may ignore the returned error.
	Notify(ctx context.Context, sub *model.ContactSubmission) error
}

// LogNotifier writes the submission to the structured log. It is the default
// collaborator when no webhook is configured.
type LogNotifier struct{}

var _ Notifier = LogNotifier{}

func (LogNotifier) Notify(_ context.Context, sub *model.ContactSubmission) error {
	slog.Info("contact submission received",
		"id", sub.ID,
		"name", sub.Name,
		"email", sub.Email,
		"created_at", sub.CreatedAt,
	)
	return nil
}
