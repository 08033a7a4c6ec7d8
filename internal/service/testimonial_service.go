package service

import (
	"context"

	"github.com/folio/backend/internal/model"
)

// TestimonialService defines the business logic for client testimonials.
type TestimonialService interface {
	List(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, error)
	Create(ctx context.Context, t *model.Testimonial) error
}
