package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/folio/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

// Insert stores a new contact_submissions row and populates sub.ID,
// sub.Status and sub.CreatedAt from the RETURNING clause.
func (r *PgContactRepository) Insert(ctx context.Context, sub *model.ContactSubmission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, message, source_address)
		 VALUES ($1, $2, $3, NULLIF($4, ''))
		 RETURNING id, status, created_at`,
		sub.Name, sub.Email, sub.Message, sub.SourceAddress,
	).Scan(&sub.ID, &sub.Status, &sub.CreatedAt)
}

// CountSince counts submissions from the given source address at or after the
// timestamp. The empty address matches rows with a NULL source_address so all
// unknown-origin submissions share one bucket.
func (r *PgContactRepository) CountSince(ctx context.Context, sourceAddress string, since time.Time) (int, error) {
	var query string
	args := []any{since}
	if sourceAddress == "" {
		query = `SELECT COUNT(*) FROM contact_submissions
		         WHERE source_address IS NULL AND created_at >= $1`
	} else {
		query = `SELECT COUNT(*) FROM contact_submissions
		         WHERE source_address = $2 AND created_at >= $1`
		args = append(args, sourceAddress)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// List returns contact submissions filtered by status and paginated by
// limit/offset, newest first. Status "" or "all" returns all submissions.
func (r *PgContactRepository) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error) {
	var conditions []string
	var args []any

	status := strings.TrimSpace(opts.Status)
	if status != "" && status != "all" {
		args = append(args, status)
		conditions = append(conditions, "status = $1")
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	limitArg := len(args) + 1
	offsetArg := len(args) + 2
	args = append(args, opts.Limit, opts.Offset)

	query := `SELECT id, name, email, message, COALESCE(source_address, ''), status, created_at
	          FROM contact_submissions ` + where +
		` ORDER BY created_at DESC, id DESC
		  LIMIT $` + strconv.Itoa(limitArg) + ` OFFSET $` + strconv.Itoa(offsetArg)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.ContactSubmission
	for rows.Next() {
		var s model.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Message, &s.SourceAddress, &s.Status, &s.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

// UpdateStatus sets the triage status of a submission.
func (r *PgContactRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_submissions SET status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
