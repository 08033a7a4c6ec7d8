package repository

import (
	"context"
	"time"

	"github.com/folio/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact submissions.
//
// Insert and CountSince form the contract consumed by the ingestion pipeline:
// the rate limiter counts prior submissions through CountSince and the
// coordinator persists through Insert. The repository itself does not
// serialize count-then-insert per source address; the service layer does.
type ContactRepository interface {
	// Insert persists a new submission and populates sub.ID, sub.CreatedAt
	// and sub.Status (pending) from the database.
	Insert(ctx context.Context, sub *model.ContactSubmission) error

	// CountSince returns the number of submissions from sourceAddress whose
	// CreatedAt is at or after since. The empty source address is a real key:
	// all unknown-origin submissions count together.
	CountSince(ctx context.Context, sourceAddress string, since time.Time) (int, error)

	// List returns submissions according to the given options, newest first.
	List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error)

	// UpdateStatus sets the triage status of a submission. Returns ErrNotFound
	// when no submission has the given id.
	UpdateStatus(ctx context.Context, id int64, status string) error
}
