package postgres

import (
	"context"
	"fmt"

	"iso-evidence-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// ChainAnchorRepo implements ports.ChainAnchorRepository.
type ChainAnchorRepo struct {
	pool Pool
}

// NewChainAnchorRepo creates a new ChainAnchorRepo.
func NewChainAnchorRepo(pool Pool) *ChainAnchorRepo {
	return &ChainAnchorRepo{pool: pool}
}

// Upsert inserts or replaces the anchor row for (receipt, chain).
func (r *ChainAnchorRepo) Upsert(ctx context.Context, anchor *domain.ChainAnchor) error {
	query := `INSERT INTO chain_anchors (receipt_id, chain, txid, anchored_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (receipt_id, chain)
		DO UPDATE SET txid = EXCLUDED.txid, anchored_at = EXCLUDED.anchored_at`

	_, err := r.pool.Exec(ctx, query, anchor.ReceiptID, anchor.Chain, anchor.TxID, anchor.AnchoredAt)
	if err != nil {
		return fmt.Errorf("upsert chain anchor: %w", err)
	}
	return nil
}

// ListByReceipt returns all anchor rows for a receipt, oldest first.
func (r *ChainAnchorRepo) ListByReceipt(ctx context.Context, receiptID uuid.UUID) ([]domain.ChainAnchor, error) {
	query := `SELECT receipt_id, chain, txid, anchored_at FROM chain_anchors
		WHERE receipt_id = $1 ORDER BY anchored_at ASC`

	rows, err := r.pool.Query(ctx, query, receiptID)
	if err != nil {
		return nil, fmt.Errorf("list chain anchors: %w", err)
	}
	defer rows.Close()

	var anchors []domain.ChainAnchor
	for rows.Next() {
		var a domain.ChainAnchor
		if err := rows.Scan(&a.ReceiptID, &a.Chain, &a.TxID, &a.AnchoredAt); err != nil {
			return nil, fmt.Errorf("scan chain anchor row: %w", err)
		}
		anchors = append(anchors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chain anchor rows: %w", err)
	}
	return anchors, nil
}

// Exists reports whether the receipt already has an anchor on the chain.
func (r *ChainAnchorRepo) Exists(ctx context.Context, receiptID uuid.UUID, chain string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM chain_anchors WHERE receipt_id = $1 AND chain = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, receiptID, chain).Scan(&exists); err != nil {
		return false, fmt.Errorf("check chain anchor exists: %w", err)
	}
	return exists, nil
}
