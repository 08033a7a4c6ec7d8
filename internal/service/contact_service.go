package service

import (
	"context"
	"errors"

	"github.com/folio/backend/internal/model"
)

// ErrRateLimited is returned by Submit when the source address has exhausted
// its submission quota for the current window.
var ErrRateLimited = errors.New("rate limit exceeded")

// ContactService defines the business logic for contact-form submissions.
type ContactService interface {
	// Submit runs the full ingestion pipeline for one submission: validation,
	// per-source rate limiting, persistence and best-effort notification.
	// It returns the persisted submission on success, validation.FieldErrors
	// when the input is invalid, ErrRateLimited when the quota is exhausted,
	// or a wrapped storage error. Rejected submissions are never persisted.
	Submit(ctx context.Context, in model.ContactInput, sourceAddress string) (*model.ContactSubmission, error)

	// List returns submissions for triage, newest first.
	List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error)

	// UpdateStatus transitions a submission's triage status.
	UpdateStatus(ctx context.Context, id int64, status string) error
}
