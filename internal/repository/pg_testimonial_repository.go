package repository

import (
	"context"

	"github.com/folio/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgTestimonialRepository is the PostgreSQL implementation of TestimonialRepository.
type PgTestimonialRepository struct {
	pool *pgxpool.Pool
}

// NewPgTestimonialRepository creates a PgTestimonialRepository backed by the given pool.
func NewPgTestimonialRepository(pool *pgxpool.Pool) *PgTestimonialRepository {
	return &PgTestimonialRepository{pool: pool}
}

var _ TestimonialRepository = (*PgTestimonialRepository)(nil)

// List returns testimonials, optionally featured only, ordered by sort_order
// ascending with newest-first as the tie-breaker.
func (r *PgTestimonialRepository) List(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, error) {
	where := ""
	if opts.FeaturedOnly {
		where = "WHERE featured = TRUE"
	}

	query := `SELECT id, client_name, client_company, client_avatar_url, quote,
	                 rating, project_type, featured, sort_order, created_at
	          FROM testimonials ` + where +
		` ORDER BY sort_order ASC, created_at DESC
		  LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, opts.Limit, opts.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []*model.Testimonial
	for rows.Next() {
		var t model.Testimonial
		if err := rows.Scan(
			&t.ID, &t.ClientName, &t.ClientCompany, &t.ClientAvatarURL, &t.Quote,
			&t.Rating, &t.ProjectType, &t.Featured, &t.SortOrder, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, &t)
	}
	return testimonials, rows.Err()
}

// Create inserts a new testimonial and populates t.ID and t.CreatedAt.
func (r *PgTestimonialRepository) Create(ctx context.Context, t *model.Testimonial) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO testimonials
		 (client_name, client_company, client_avatar_url, quote, rating,
		  project_type, featured, sort_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		t.ClientName, t.ClientCompany, t.ClientAvatarURL, t.Quote, t.Rating,
		t.ProjectType, t.Featured, t.SortOrder,
	).Scan(&t.ID, &t.CreatedAt)
}
