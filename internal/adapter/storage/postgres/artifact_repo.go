package postgres

import (
	"context"
	"fmt"

	"iso-evidence-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// ArtifactRepo implements ports.ArtifactRepository.
type ArtifactRepo struct {
	pool Pool
}

// NewArtifactRepo creates a new ArtifactRepo.
func NewArtifactRepo(pool Pool) *ArtifactRepo {
	return &ArtifactRepo{pool: pool}
}

// Create inserts an artifact row.
func (r *ArtifactRepo) Create(ctx context.Context, artifact *domain.Artifact) error {
	query := `INSERT INTO artifacts (receipt_id, type, path, sha256, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		artifact.ReceiptID, artifact.Type, artifact.Path, artifact.SHA256, artifact.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert artifact: %w", err)
	}
	return nil
}

// ListByReceipt returns all artifact rows for a receipt, oldest first.
func (r *ArtifactRepo) ListByReceipt(ctx context.Context, receiptID uuid.UUID) ([]domain.Artifact, error) {
	query := `SELECT id, receipt_id, type, path, sha256, created_at FROM artifacts
		WHERE receipt_id = $1 ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query, receiptID)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	defer rows.Close()

	var artifacts []domain.Artifact
	for rows.Next() {
		var a domain.Artifact
		if err := rows.Scan(&a.ID, &a.ReceiptID, &a.Type, &a.Path, &a.SHA256, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan artifact row: %w", err)
		}
		artifacts = append(artifacts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artifact rows: %w", err)
	}
	return artifacts, nil
}
