package service

import (
	"context"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
)

// projectServiceImpl is the production implementation of ProjectService.
type projectServiceImpl struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectServiceImpl{repo: repo}
}

func (s *projectServiceImpl) List(ctx context.Context, opts model.ProjectListOptions) ([]*model.PortfolioProject, error) {
	return s.repo.List(ctx, opts)
}

func (s *projectServiceImpl) GetByID(ctx context.Context, id int64) (*model.PortfolioProject, error) {
	return s.repo.GetByID(ctx, id)
}

// Create persists a new project. Empty gallery/tools slices are normalized so
// the public API always serves arrays, never null.
func (s *projectServiceImpl) Create(ctx context.Context, p *model.PortfolioProject) error {
	if p.GalleryImages == nil {
		p.GalleryImages = []string{}
	}
	if p.ToolsUsed == nil {
		p.ToolsUsed = []string{}
	}
	return s.repo.Create(ctx, p)
}
