package model

import "time"

// Project types. A portfolio entry is either photography work or a UI/UX case study.
const (
	ProjectTypePhotography = "photography"
	ProjectTypeUIUX        = "uiux"
)

// ValidProjectType reports whether t is a known project type.
func ValidProjectType(t string) bool {
	return t == ProjectTypePhotography || t == ProjectTypeUIUX
}

// PortfolioProject is a portfolio entry shown on the public site.
// Role/Problem/Solution/PrototypeURL are only meaningful for UI/UX case
// studies and stay nil for photography work.
type PortfolioProject struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Type          string    `json:"type"` // "photography" | "uiux"
	HeroImageURL  string    `json:"hero_image_url"`
	GalleryImages []string  `json:"gallery_images"`
	ToolsUsed     []string  `json:"tools_used"`
	Role          *string   `json:"role"`
	Problem       *string   `json:"problem"`
	Solution      *string   `json:"solution"`
	PrototypeURL  *string   `json:"prototype_url"`
	Featured      bool      `json:"featured"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProjectListOptions carries filter and pagination parameters for listing
// portfolio projects. Ordering is always sort_order ascending, then newest
// first as the tie-breaker.
type ProjectListOptions struct {
	// Type filters by project type; empty returns all types.
	Type string
	// FeaturedOnly restricts the result to featured projects.
	FeaturedOnly bool
	Limit        int
	Offset       int
}
