package model

import "time"

// Submission status values. A submission is created as pending; the ingestion
// pipeline itself never transitions it — triage happens through the admin API.
const (
	StatusPending   = "pending"
	StatusProcessed = "processed"
	StatusSpam      = "spam"
)

// ValidSubmissionStatus reports whether s is one of the known status values.
func ValidSubmissionStatus(s string) bool {
	return s == StatusPending || s == StatusProcessed || s == StatusSpam
}

// ContactSubmission is a durable record of an accepted contact-form submission.
type ContactSubmission struct {
	ID int64 `json:"id"`
	// Name, Email and Message hold the validated (trimmed) input.
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	// SourceAddress identifies the submitting network origin. It is stored as
	// an opaque string (may be empty when the origin is unknown) and is the
	// rate-limit partition key.
	SourceAddress string    `json:"source_address,omitempty"`
	Status        string    `json:"status"` // "pending" | "processed" | "spam"
	CreatedAt     time.Time `json:"created_at"`
}

// ContactInput is the raw contact-form payload before validation.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmissionListOptions carries filter and pagination parameters for listing
// contact submissions.
type SubmissionListOptions struct {
	// Status filters by submission status: "", "all", "pending", "processed",
	// "spam". Empty string and "all" return all submissions.
	Status string
	Limit  int
	Offset int
}

// RateLimitPolicy bounds accepted submissions per source address inside a
// trailing window evaluated at request time.
type RateLimitPolicy struct {
	MaxRequests int
	Window      time.Duration
}

// Defaults: 5 submissions per source per 5 minutes.
const (
	DefaultRateLimitMax    = 5
	DefaultRateLimitWindow = 5 * time.Minute
)

// DefaultRateLimitPolicy returns the default submission quota.
func DefaultRateLimitPolicy() RateLimitPolicy {
	return RateLimitPolicy{MaxRequests: DefaultRateLimitMax, Window: DefaultRateLimitWindow}
}
