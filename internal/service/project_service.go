package service

import (
	"context"

	"github.com/folio/backend/internal/model"
)

// ProjectService defines the business logic for portfolio projects.
type ProjectService interface {
	List(ctx context.Context, opts model.ProjectListOptions) ([]*model.PortfolioProject, error)
	GetByID(ctx context.Context, id int64) (*model.PortfolioProject, error)
	Create(ctx context.Context, p *model.PortfolioProject) error
}
