package repository

import (
	"context"

	"github.com/folio/backend/internal/model"
)

// TestimonialRepository defines the persistence interface for testimonials.
type TestimonialRepository interface {
	List(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, error)
	Create(ctx context.Context, t *model.Testimonial) error
}
