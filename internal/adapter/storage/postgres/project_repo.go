package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"iso-evidence-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProjectRepo implements ports.ProjectRepository. The anchoring policy is
// stored as a JSONB column so per-project chain sets evolve without schema
// changes.
type ProjectRepo struct {
	pool Pool
}

// NewProjectRepo creates a new ProjectRepo.
func NewProjectRepo(pool Pool) *ProjectRepo {
	return &ProjectRepo{pool: pool}
}

// Create inserts a new project.
func (r *ProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	anchoring, err := json.Marshal(project.Anchoring)
	if err != nil {
		return fmt.Errorf("marshal anchoring config: %w", err)
	}

	query := `INSERT INTO projects (id, name, anchoring, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.pool.Exec(ctx, query, project.ID, project.Name, anchoring, project.CreatedAt); err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID fetches a project by UUID. Returns (nil, nil) when absent.
func (r *ProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	query := `SELECT id, name, anchoring, created_at FROM projects WHERE id = $1`

	project := &domain.Project{}
	var anchoring []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(&project.ID, &project.Name, &anchoring, &project.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	if len(anchoring) > 0 {
		if err := json.Unmarshal(anchoring, &project.Anchoring); err != nil {
			return nil, fmt.Errorf("unmarshal anchoring config: %w", err)
		}
	}
	return project, nil
}

// UpdateAnchoring replaces a project's anchoring policy.
func (r *ProjectRepo) UpdateAnchoring(ctx context.Context, id uuid.UUID, cfg domain.AnchoringConfig) error {
	anchoring, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal anchoring config: %w", err)
	}

	tag, err := r.pool.Exec(ctx, `UPDATE projects SET anchoring = $1 WHERE id = $2`, anchoring, id)
	if err != nil {
		return fmt.Errorf("update project anchoring: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project not found: %s", id)
	}
	return nil
}
