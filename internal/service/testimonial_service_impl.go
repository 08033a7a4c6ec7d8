package service

import (
	"context"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
)

// testimonialServiceImpl is the production implementation of TestimonialService.
type testimonialServiceImpl struct {
	repo repository.TestimonialRepository
}

// NewTestimonialService creates a TestimonialService backed by the given repository.
func NewTestimonialService(repo repository.TestimonialRepository) TestimonialService {
	return &testimonialServiceImpl{repo: repo}
}

func (s *testimonialServiceImpl) List(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, error) {
	return s.repo.List(ctx, opts)
}

func (s *testimonialServiceImpl) Create(ctx context.Context, t *model.Testimonial) error {
	return s.repo.Create(ctx, t)
}
