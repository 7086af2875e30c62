package ports

import (
	"context"
	"time"

	"iso-evidence-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// ReceiptRepository defines persistence operations for receipts.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *domain.Receipt) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Receipt, error)
	GetByReference(ctx context.Context, reference string) (*domain.Receipt, error)
	GetByChainTx(ctx context.Context, chain, tipTxHash string) (*domain.Receipt, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReceiptStatus) error
	SetBundleHash(ctx context.Context, id uuid.UUID, bundleHash string) error
	SetAnchorResult(ctx context.Context, id uuid.UUID, txid string, anchoredAt time.Time) error
	SetArtifactPaths(ctx context.Context, id uuid.UUID, xmlPath, bundlePath string) error
	List(ctx context.Context, params ReceiptListParams) ([]domain.Receipt, int64, error)
}

// ReceiptListParams holds filter + pagination for listing receipts.
type ReceiptListParams struct {
	ProjectID *uuid.UUID
	Status    *domain.ReceiptStatus
	Chain     *string
	Reference *string // substring match
	Since     *time.Time
	Until     *time.Time
	Page      int
	PageSize  int
}

// ChainAnchorRepository defines persistence for per-chain anchor rows.
type ChainAnchorRepository interface {
	// Upsert inserts or replaces the row for (receipt, chain). Repeated
	// confirmations for the same chain overwrite rather than duplicate.
	Upsert(ctx context.Context, anchor *domain.ChainAnchor) error
	ListByReceipt(ctx context.Context, receiptID uuid.UUID) ([]domain.ChainAnchor, error)
	Exists(ctx context.Context, receiptID uuid.UUID, chain string) (bool, error)
}

// ProjectRepository defines persistence operations for projects (tenants).
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	UpdateAnchoring(ctx context.Context, id uuid.UUID, cfg domain.AnchoringConfig) error
}

// ArtifactRepository defines persistence for artifact rows. Writes are
// best-effort from the pipeline's perspective; a failed artifact row never
// fails the run.
type ArtifactRepository interface {
	Create(ctx context.Context, artifact *domain.Artifact) error
	ListByReceipt(ctx context.Context, receiptID uuid.UUID) ([]domain.Artifact, error)
}
