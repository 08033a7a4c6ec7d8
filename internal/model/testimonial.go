package model

import "time"

// Testimonial is a client quote shown on the public site. ProjectType is nil
// for general testimonials not tied to photography or UI/UX work.
type Testimonial struct {
	ID              int64     `json:"id"`
	ClientName      string    `json:"client_name"`
	ClientCompany   *string   `json:"client_company"`
	ClientAvatarURL *string   `json:"client_avatar_url"`
	Quote           string    `json:"quote"`
	Rating          int       `json:"rating"` // 1-5 stars
	ProjectType     *string   `json:"project_type"`
	Featured        bool      `json:"featured"`
	SortOrder       int       `json:"sort_order"`
	CreatedAt       time.Time `json:"created_at"`
}

// TestimonialListOptions carries filter and pagination parameters for listing
// testimonials. Ordering matches projects: sort_order ascending, newest first.
type TestimonialListOptions struct {
	FeaturedOnly bool
	Limit        int
	Offset       int
}
