package service

import (
	"context"
	"errors"
	"testing"

	"github.com/folio/backend/internal/model"
)

type mockTestimonialRepository struct {
	listFunc   func(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, error)
	createFunc func(ctx context.Context, tm *model.Testimonial) error
}

func (m *mockTestimonialRepository) List(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockTestimonialRepository) Create(ctx context.Context, tm *model.Testimonial) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, tm)
	}
	return nil
}

func TestTestimonialService_List_ForwardsOptions(t *testing.T) {
	var captured model.TestimonialListOptions
	mock := &mockTestimonialRepository{
		listFunc: func(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, error) {
			captured = opts
			return nil, nil
		},
	}
	svc := NewTestimonialService(mock)

	opts := model.TestimonialListOptions{FeaturedOnly: true, Limit: 10, Offset: 2}
	if _, err := svc.List(context.Background(), opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured != opts {
		t.Errorf("expected options forwarded, got %+v", captured)
	}
}

func TestTestimonialService_Create_RepositoryError(t *testing.T) {
	mock := &mockTestimonialRepository{
		createFunc: func(ctx context.Context, tm *model.Testimonial) error {
			return errors.New("db write failed")
		},
	}
	svc := NewTestimonialService(mock)

	tm := &model.Testimonial{ClientName: "Ana", Quote: "Great work, truly.", Rating: 5}
	if err := svc.Create(context.Background(), tm); err == nil {
		t.Error("expected error from repository, got nil")
	}
}
