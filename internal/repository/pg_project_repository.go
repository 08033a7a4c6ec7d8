package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/folio/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository backed by the given pool.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

const projectColumns = `id, title, description, type, hero_image_url,
	gallery_images, tools_used, role, problem, solution, prototype_url,
	featured, sort_order, created_at, updated_at`

// List returns portfolio projects filtered by type/featured, ordered by
// sort_order ascending with newest-first as the tie-breaker.
func (r *PgProjectRepository) List(ctx context.Context, opts model.ProjectListOptions) ([]*model.PortfolioProject, error) {
	var conditions []string
	var args []any

	if opts.Type != "" {
		args = append(args, opts.Type)
		conditions = append(conditions, "type = $"+strconv.Itoa(len(args)))
	}
	if opts.FeaturedOnly {
		conditions = append(conditions, "featured = TRUE")
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	limitArg := len(args) + 1
	offsetArg := len(args) + 2
	args = append(args, opts.Limit, opts.Offset)

	query := `SELECT ` + projectColumns + ` FROM portfolio_projects ` + where +
		` ORDER BY sort_order ASC, created_at DESC
		  LIMIT $` + strconv.Itoa(limitArg) + ` OFFSET $` + strconv.Itoa(offsetArg)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.PortfolioProject
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetByID returns a single project or ErrNotFound.
func (r *PgProjectRepository) GetByID(ctx context.Context, id int64) (*model.PortfolioProject, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM portfolio_projects WHERE id = $1`, id)
	p, err := scanProject(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new project and populates p.ID and timestamps.
func (r *PgProjectRepository) Create(ctx context.Context, p *model.PortfolioProject) error {
	gallery, err := json.Marshal(emptyIfNil(p.GalleryImages))
	if err != nil {
		return err
	}
	tools, err := json.Marshal(emptyIfNil(p.ToolsUsed))
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO portfolio_projects
		 (title, description, type, hero_image_url, gallery_images, tools_used,
		  role, problem, solution, prototype_url, featured, sort_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, created_at, updated_at`,
		p.Title, p.Description, p.Type, p.HeroImageURL, gallery, tools,
		p.Role, p.Problem, p.Solution, p.PrototypeURL, p.Featured, p.SortOrder,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// scanProject reads one project row, decoding the jsonb array columns.
func scanProject(row pgx.Row) (*model.PortfolioProject, error) {
	var p model.PortfolioProject
	var gallery, tools []byte
	if err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Type, &p.HeroImageURL,
		&gallery, &tools, &p.Role, &p.Problem, &p.Solution, &p.PrototypeURL,
		&p.Featured, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(gallery, &p.GalleryImages); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tools, &p.ToolsUsed); err != nil {
		return nil, err
	}
	return &p, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
