package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
	"github.com/folio/backend/internal/service"
	"github.com/folio/backend/internal/validation"
)

// Caller-facing copy. Rate-limit and store failures stay generic so quota
// values and storage internals never leak.
const (
	msgSubmitted   = "Message sent successfully!"
	msgRateLimited = "Too many requests. Please wait before submitting again."
	msgSubmitError = "Failed to send message. Please try again later."
)

// ContactHandler handles contact-form submission and admin triage.
type ContactHandler struct {
	contactService    service.ContactService
	trustedProxyCount int
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService, trustedProxyCount int) *ContactHandler {
	return &ContactHandler{
		contactService:    contactService,
		trustedProxyCount: trustedProxyCount,
	}
}

// submitResponse is the JSON result of POST /api/contact.
type submitResponse struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message,omitempty"`
	Error       string            `json:"error,omitempty"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

// Submit handles POST /api/contact. The body is the raw form input; the
// source address is resolved from the connection / trusted proxy headers.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in model.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(submitResponse{Success: false, Error: "Invalid request body"})
		return
	}

	sourceAddress := ClientIP(r, h.trustedProxyCount)
	_, err := h.contactService.Submit(r.Context(), in, sourceAddress)

	var fieldErrs validation.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(submitResponse{
			Success:     false,
			Error:       "Validation failed",
			FieldErrors: fieldErrs,
		})
	case errors.Is(err, service.ErrRateLimited):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(submitResponse{Success: false, Error: msgRateLimited})
	case err != nil:
		slog.Error("contact submission failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(submitResponse{Success: false, Error: msgSubmitError})
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(submitResponse{Success: true, Message: msgSubmitted})
	}
}

// adminListResponse is the JSON response for GET /api/admin/submissions.
type adminListResponse struct {
	Submissions []*model.ContactSubmission `json:"submissions"`
}

// AdminList handles GET /api/admin/submissions (token-guarded by middleware).
// Supports query params: status (all/pending/processed/spam), limit, offset.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	opts := model.SubmissionListOptions{
		Status: r.URL.Query().Get("status"),
		Limit:  20,
		Offset: 0,
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

	submissions, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		slog.Error("list submissions failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	// Return [] not null for empty lists
	if submissions == nil {
		submissions = []*model.ContactSubmission{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(adminListResponse{Submissions: submissions})
}

// updateStatusRequest is the expected JSON body for the status PATCH.
type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/admin/submissions/{id}/status.
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	if !model.ValidSubmissionStatus(req.Status) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_status"})
		return
	}

	if err := h.contactService.UpdateStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		slog.Error("update submission status failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"ok": "true"})
}
