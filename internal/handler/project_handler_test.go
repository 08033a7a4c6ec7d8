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
	"github.com/folio/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock ProjectService
// ---------------------------------------------------------------------------

type mockProjectService struct {
	listFunc   func(ctx context.Context, opts model.ProjectListOptions) ([]*model.PortfolioProject, error)
	getFunc    func(ctx context.Context, id int64) (*model.PortfolioProject, error)
	createFunc func(ctx context.Context, p *model.PortfolioProject) error
}

func (m *mockProjectService) List(ctx context.Context, opts model.ProjectListOptions) ([]*model.PortfolioProject, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockProjectService) GetByID(ctx context.Context, id int64) (*model.PortfolioProject, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockProjectService) Create(ctx context.Context, p *model.PortfolioProject) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, p)
	}
	return nil
}

func validProjectBody() string {
	return `{
		"title": "Dune Light",
		"description": "A desert photography series.",
		"type": "photography",
		"hero_image_url": "https://cdn.example.com/dunes/hero.jpg",
		"gallery_images": ["https://cdn.example.com/dunes/1.jpg"],
		"tools_used": ["Fujifilm X-T5"]
	}`
}

// ---------------------------------------------------------------------------
// GET /api/projects tests
// ---------------------------------------------------------------------------

func TestProjectHandler_List_ForwardsFilters(t *testing.T) {
	var captured model.ProjectListOptions
	mock := &mockProjectService{
		listFunc: func(ctx context.Context, opts model.ProjectListOptions) ([]*model.PortfolioProject, error) {
			captured = opts
			return nil, nil
		},
	}
	h := NewProjectHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects?type=uiux&featured=true&limit=5&offset=10", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	want := model.ProjectListOptions{Type: "uiux", FeaturedOnly: true, Limit: 5, Offset: 10}
	if captured != want {
		t.Errorf("expected %+v, got %+v", want, captured)
	}
}

func TestProjectHandler_List_InvalidType(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{})

	req := httptest.NewRequest(http.MethodGet, "/api/projects?type=painting", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown type, got %d", rec.Code)
	}
}

func TestProjectHandler_List_EmptyIsArray(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{})

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if !strings.Contains(rec.Body.String(), `"projects":[]`) {
		t.Errorf("expected [] not null, body: %s", rec.Body.String())
	}
}

// ---------------------------------------------------------------------------
// GET /api/projects/{id} tests
// ---------------------------------------------------------------------------

func TestProjectHandler_Get_Success(t *testing.T) {
	mock := &mockProjectService{
		getFunc: func(ctx context.Context, id int64) (*model.PortfolioProject, error) {
			return &model.PortfolioProject{
				ID: id, Title: "Dune Light", Type: model.ProjectTypePhotography,
				GalleryImages: []string{}, ToolsUsed: []string{}, CreatedAt: time.Now(),
			}, nil
		},
	}
	h := NewProjectHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/3", nil)
	req.SetPathValue("id", "3")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var p model.PortfolioProject
	if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if p.ID != 3 {
		t.Errorf("expected id=3, got %d", p.ID)
	}
}

func TestProjectHandler_Get_NotFound(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{})

	req := httptest.NewRequest(http.MethodGet, "/api/projects/999", nil)
	req.SetPathValue("id", "999")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// POST /api/projects tests
// ---------------------------------------------------------------------------

func TestProjectHandler_Create_Success(t *testing.T) {
	var saved *model.PortfolioProject
	mock := &mockProjectService{
		createFunc: func(ctx context.Context, p *model.PortfolioProject) error {
			saved = p
			p.ID = 1
			return nil
		},
	}
	h := NewProjectHandler(mock)

	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(validProjectBody()))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if saved == nil || saved.Title != "Dune Light" {
		t.Errorf("expected project forwarded to service, got %+v", saved)
	}
}

func TestProjectHandler_Create_Validation(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{})

	cases := []struct {
		name string
		body string
		code string
	}{
		{"missing title", `{"description":"d","type":"uiux","hero_image_url":"https://x.com/a.jpg"}`, "title_required"},
		{"missing description", `{"title":"t","type":"uiux","hero_image_url":"https://x.com/a.jpg"}`, "description_required"},
		{"bad type", `{"title":"t","description":"d","type":"video","hero_image_url":"https://x.com/a.jpg"}`, "invalid_type"},
		{"bad hero url", `{"title":"t","description":"d","type":"uiux","hero_image_url":"not-a-url"}`, "invalid_hero_image_url"},
		{"bad gallery url", `{"title":"t","description":"d","type":"uiux","hero_image_url":"https://x.com/a.jpg","gallery_images":["nope"]}`, "invalid_gallery_image_url"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(tc.body))
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
