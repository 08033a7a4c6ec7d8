package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/folio/backend/internal/model"
)

type mockTestimonialService struct {
	listFunc   func(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, error)
	createFunc func(ctx context.Context, tm *model.Testimonial) error
}

func (m *mockTestimonialService) List(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockTestimonialService) Create(ctx context.Context, tm *model.Testimonial) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, tm)
	}
	return nil
}

func TestTestimonialHandler_List_Success(t *testing.T) {
	mock := &mockTestimonialService{
		listFunc: func(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, error) {
			return []*model.Testimonial{
				{ID: 1, ClientName: "Ana", Quote: "Wonderful collaboration.", Rating: 5, CreatedAt: time.Now()},
			}, nil
		},
	}
	h := NewTestimonialHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/testimonials", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp testimonialListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Testimonials) != 1 {
		t.Errorf("expected 1 testimonial, got %d", len(resp.Testimonials))
	}
}

func TestTestimonialHandler_List_FeaturedFilter(t *testing.T) {
	var captured model.TestimonialListOptions
	mock := &mockTestimonialService{
		listFunc: func(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, error) {
			captured = opts
			return nil, nil
		},
	}
	h := NewTestimonialHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/testimonials?featured=true", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if !captured.FeaturedOnly {
		t.Error("expected featured filter forwarded")
	}
}

func TestTestimonialHandler_List_EmptyIsArray(t *testing.T) {
	h := NewTestimonialHandler(&mockTestimonialService{})

	req := httptest.NewRequest(http.MethodGet, "/api/testimonials", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if !strings.Contains(rec.Body.String(), `"testimonials":[]`) {
		t.Errorf("expected [] not null, body: %s", rec.Body.String())
	}
}

func TestTestimonialHandler_Create_Success(t *testing.T) {
	var saved *model.Testimonial
	mock := &mockTestimonialService{
		createFunc: func(ctx context.Context, tm *model.Testimonial) error {
			saved = tm
			tm.ID = 1
			return nil
		},
	}
	h := NewTestimonialHandler(mock)

	body := `{"client_name":"Ana","quote":"A wonderful collaboration.","rating":5}`
	req := httptest.NewRequest(http.MethodPost, "/api/testimonials", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if saved == nil || saved.ClientName != "Ana" {
		t.Errorf("expected testimonial forwarded, got %+v", saved)
	}
}

func TestTestimonialHandler_Create_Validation(t *testing.T) {
	h := NewTestimonialHandler(&mockTestimonialService{})

	cases := []struct {
		name string
		body string
		code string
	}{
		{"missing name", `{"quote":"A wonderful collaboration.","rating":5}`, "client_name_required"},
		{"short quote", `{"client_name":"Ana","quote":"Nice.","rating":5}`, "quote_too_short"},
		{"rating too high", `{"client_name":"Ana","quote":"A wonderful collaboration.","rating":6}`, "invalid_rating"},
		{"rating too low", `{"client_name":"Ana","quote":"A wonderful collaboration.","rating":0}`, "invalid_rating"},
		{"bad project type", `{"client_name":"Ana","quote":"A wonderful collaboration.","rating":5,"project_type":"video"}`, "invalid_project_type"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/testimonials", strings.NewReader(tc.body))
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tc.name, rec.Code)
			continue
		}
		var resp map[string]string
		_ = json.NewDecoder(rec.Body).Decode(&resp)
		if resp["error"] != tc.code {
			t.Errorf("%s: expected error=%s, got %q", tc.name, tc.code, resp["error"])
		}
	}
}
