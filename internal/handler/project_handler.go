package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"unicode/utf8"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
	"github.com/folio/backend/internal/service"
)

const (
	maxProjectTitleLength       = 255
	maxProjectDescriptionLength = 2000
)

// ProjectHandler handles public portfolio-project reads and admin creation.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a ProjectHandler with the given service.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// projectListResponse is the JSON response for GET /api/projects.
type projectListResponse struct {
	Projects []*model.PortfolioProject `json:"projects"`
}

// List handles GET /api/projects.
// Supports query params: type (photography/uiux), featured=true, limit, offset.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.ProjectListOptions{
		Type:         r.URL.Query().Get("type"),
		FeaturedOnly: r.URL.Query().Get("featured") == "true",
		Limit:        20,
		Offset:       0,
	}

	if opts.Type != "" && !model.ValidProjectType(opts.Type) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_type"})
		return
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	projects, err := h.projectService.List(r.Context(), opts)
	if err != nil {
		slog.Error("list projects failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	// Return [] not null for empty lists
	if projects == nil {
		projects = []*model.PortfolioProject{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(projectListResponse{Projects: projects})
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	project, err := h.projectService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		slog.Error("get project failed", "error", err, "id", id)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "get_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(project)
}

// createProjectRequest is the expected JSON body for POST /api/projects.
type createProjectRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Type          string   `json:"type"`
	HeroImageURL  string   `json:"hero_image_url"`
	GalleryImages []string `json:"gallery_images"`
	ToolsUsed     []string `json:"tools_used"`
	Role          *string  `json:"role"`
	Problem       *string  `json:"problem"`
	Solution      *string  `json:"solution"`
	PrototypeURL  *string  `json:"prototype_url"`
	Featured      bool     `json:"featured"`
	SortOrder     int      `json:"sort_order"`
}

// Create handles POST /api/projects (token-guarded by middleware).
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	if code := validateCreateProject(req); code != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
		return
	}

	project := &model.PortfolioProject{
		Title:         req.Title,
		Description:   req.Description,
		Type:          req.Type,
		HeroImageURL:  req.HeroImageURL,
		GalleryImages: req.GalleryImages,
		ToolsUsed:     req.ToolsUsed,
		Role:          req.Role,
		Problem:       req.Problem,
		Solution:      req.Solution,
		PrototypeURL:  req.PrototypeURL,
		Featured:      req.Featured,
		SortOrder:     req.SortOrder,
	}

	if err := h.projectService.Create(r.Context(), project); err != nil {
		slog.Error("create project failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "create_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(project)
}

// validateCreateProject returns an error code, or "" when the request is valid.
func validateCreateProject(req createProjectRequest) string {
	switch {
	case req.Title == "":
		return "title_required"
	case utf8.RuneCountInString(req.Title) > maxProjectTitleLength:
		return "title_too_long"
	case req.Description == "":
		return "description_required"
	case utf8.RuneCountInString(req.Description) > maxProjectDescriptionLength:
		return "description_too_long"
	case !model.ValidProjectType(req.Type):
		return "invalid_type"
	case !validURL(req.HeroImageURL):
		return "invalid_hero_image_url"
	}
	for _, img := range req.GalleryImages {
		if !validURL(img) {
			return "invalid_gallery_image_url"
		}
	}
	if req.PrototypeURL != nil && !validURL(*req.PrototypeURL) {
		return "invalid_prototype_url"
	}
	return ""
}

// validURL accepts absolute http(s) URLs.
func validURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
