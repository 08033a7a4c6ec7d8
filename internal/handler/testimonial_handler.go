package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/service"
)

const (
	maxClientNameLength    = 100
	maxClientCompanyLength = 100
	minQuoteLength         = 10
	maxQuoteLength         = 500
)

// TestimonialHandler handles public testimonial reads and admin creation.
type TestimonialHandler struct {
	testimonialService service.TestimonialService
}

// NewTestimonialHandler creates a TestimonialHandler with the given service.
func NewTestimonialHandler(testimonialService service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

// testimonialListResponse is the JSON response for GET /api/testimonials.
type testimonialListResponse struct {
	Testimonials []*model.Testimonial `json:"testimonials"`
}

// List handles GET /api/testimonials.
// Supports query params: featured=true, limit, offset.
func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.TestimonialListOptions{
		FeaturedOnly: r.URL.Query().Get("featured") == "true",
		Limit:        20,
		Offset:       0,
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

	testimonials, err := h.testimonialService.List(r.Context(), opts)
	if err != nil {
		slog.Error("list testimonials failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	// Return [] not null for empty lists
	if testimonials == nil {
		testimonials = []*model.Testimonial{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(testimonialListResponse{Testimonials: testimonials})
}

// createTestimonialRequest is the expected JSON body for POST /api/testimonials.
type createTestimonialRequest struct {
	ClientName      string  `json:"client_name"`
	ClientCompany   *string `json:"client_company"`
	ClientAvatarURL *string `json:"client_avatar_url"`
	Quote           string  `json:"quote"`
	Rating          int     `json:"rating"`
	ProjectType     *string `json:"project_type"`
	Featured        bool    `json:"featured"`
	SortOrder       int     `json:"sort_order"`
}

// Create handles POST /api/testimonials (token-guarded by middleware).
func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	if code := validateCreateTestimonial(req); code != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
		return
	}

	testimonial := &model.Testimonial{
		ClientName:      req.ClientName,
		ClientCompany:   req.ClientCompany,
		ClientAvatarURL: req.ClientAvatarURL,
		Quote:           req.Quote,
		Rating:          req.Rating,
		ProjectType:     req.ProjectType,
		Featured:        req.Featured,
		SortOrder:       req.SortOrder,
	}

	if err := h.testimonialService.Create(r.Context(), testimonial); err != nil {
		slog.Error("create testimonial failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "create_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(testimonial)
}

// validateCreateTestimonial returns an error code, or "" when valid.
func validateCreateTestimonial(req createTestimonialRequest) string {
	switch {
	case req.ClientName == "":
		return "client_name_required"
	case utf8.RuneCountInString(req.ClientName) > maxClientNameLength:
		return "client_name_too_long"
	case req.ClientCompany != nil && utf8.RuneCountInString(*req.ClientCompany) > maxClientCompanyLength:
		return "client_company_too_long"
	case utf8.RuneCountInString(req.Quote) < minQuoteLength:
		return "quote_too_short"
	case utf8.RuneCountInString(req.Quote) > maxQuoteLength:
		return "quote_too_long"
	case req.Rating < 1 || req.Rating > 5:
		return "invalid_rating"
	case req.ProjectType != nil && !model.ValidProjectType(*req.ProjectType):
		return "invalid_project_type"
	case req.ClientAvatarURL != nil && !validURL(*req.ClientAvatarURL):
		return "invalid_avatar_url"
	}
	return ""
}
