package repository

import (
	"context"

	"github.com/folio/backend/internal/model"
)

// ProjectRepository defines the persistence interface for portfolio projects.
type ProjectRepository interface {
	List(ctx context.Context, opts model.ProjectListOptions) ([]*model.PortfolioProject, error)
	GetByID(ctx context.Context, id int64) (*model.PortfolioProject, error)
	Create(ctx context.Context, p *model.PortfolioProject) error
}
