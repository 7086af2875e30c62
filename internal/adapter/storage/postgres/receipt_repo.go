package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"iso-evidence-gateway/internal/core/domain"
	"iso-evidence-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const receiptColumns = `id, project_id, reference, tip_tx_hash, chain, amount, currency,
	sender_wallet, receiver_wallet, status, bundle_hash, anchor_txid, refund_of,
	xml_path, bundle_path, callback_url, created_at, anchored_at`

// ReceiptRepo implements ports.ReceiptRepository.
type ReceiptRepo struct {
	pool Pool
}

// NewReceiptRepo creates a new ReceiptRepo.
func NewReceiptRepo(pool Pool) *ReceiptRepo {
	return &ReceiptRepo{pool: pool}
}

// Create inserts a new receipt.
func (r *ReceiptRepo) Create(ctx context.Context, rec *domain.Receipt) error {
	query := `INSERT INTO receipts (` + receiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.ProjectID, rec.Reference, rec.TipTxHash, rec.Chain,
		rec.Amount, rec.Currency, rec.SenderWallet, rec.ReceiverWallet,
		rec.Status, nullable(rec.BundleHash), nullable(rec.AnchorTxID), rec.RefundOf,
		nullable(rec.XMLPath), nullable(rec.BundlePath), rec.CallbackURL,
		rec.CreatedAt, rec.AnchoredAt,
	)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// GetByID fetches a receipt by UUID. Returns (nil, nil) when absent.
func (r *ReceiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE id = $1`
	return r.scanReceipt(r.pool.QueryRow(ctx, query, id))
}

// GetByReference fetches a receipt by its payment reference.
func (r *ReceiptRepo) GetByReference(ctx context.Context, reference string) (*domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE reference = $1`
	return r.scanReceipt(r.pool.QueryRow(ctx, query, reference))
}

// GetByChainTx fetches the receipt recorded for a (chain, tip tx) pair.
func (r *ReceiptRepo) GetByChainTx(ctx context.Context, chain, tipTxHash string) (*domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE chain = $1 AND tip_tx_hash = $2`
	return r.scanReceipt(r.pool.QueryRow(ctx, query, chain, tipTxHash))
}

// UpdateStatus sets a receipt's status.
func (r *ReceiptRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReceiptStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE receipts SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update receipt status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("receipt not found: %s", id)
	}
	return nil
}

// SetBundleHash records the bundle fingerprint once the evidence is built.
func (r *ReceiptRepo) SetBundleHash(ctx context.Context, id uuid.UUID, bundleHash string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE receipts SET bundle_hash = $1 WHERE id = $2`, bundleHash, id)
	if err != nil {
		return fmt.Errorf("set bundle hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("receipt not found: %s", id)
	}
	return nil
}

// SetAnchorResult records the first successful anchoring transaction.
func (r *ReceiptRepo) SetAnchorResult(ctx context.Context, id uuid.UUID, txid string, anchoredAt time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE receipts SET anchor_txid = $1, anchored_at = $2 WHERE id = $3`,
		txid, anchoredAt, id)
	if err != nil {
		return fmt.Errorf("set anchor result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("receipt not found: %s", id)
	}
	return nil
}

// SetArtifactPaths records where the XML and bundle artifacts landed.
func (r *ReceiptRepo) SetArtifactPaths(ctx context.Context, id uuid.UUID, xmlPath, bundlePath string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE receipts SET xml_path = $1, bundle_path = $2 WHERE id = $3`,
		xmlPath, bundlePath, id)
	if err != nil {
		return fmt.Errorf("set artifact paths: %w", err)
	}
	return nil
}

// List fetches receipts with filtering and pagination, newest first.
func (r *ReceiptRepo) List(ctx context.Context, params ports.ReceiptListParams) ([]domain.Receipt, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.ProjectID != nil {
		conditions = append(conditions, fmt.Sprintf("project_id = $%d", argIdx))
		args = append(args, *params.ProjectID)
		argIdx++
	}
	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}
	if params.Chain != nil {
		conditions = append(conditions, fmt.Sprintf("chain = $%d", argIdx))
		args = append(args, *params.Chain)
		argIdx++
	}
	if params.Reference != nil {
		conditions = append(conditions, fmt.Sprintf("reference ILIKE $%d", argIdx))
		args = append(args, "%"+*params.Reference+"%")
		argIdx++
	}
	if params.Since != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argIdx))
		args = append(args, *params.Since)
		argIdx++
	}
	if params.Until != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", argIdx))
		args = append(args, *params.Until)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM receipts %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count receipts: %w", err)
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	dataQuery := fmt.Sprintf(`SELECT %s FROM receipts %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		receiptColumns, where, argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()

	var receipts []domain.Receipt
	for rows.Next() {
		rec, err := scanReceiptRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan receipt row: %w", err)
		}
		receipts = append(receipts, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate receipt rows: %w", err)
	}
	return receipts, total, nil
}

func (r *ReceiptRepo) scanReceipt(row pgx.Row) (*domain.Receipt, error) {
	rec, err := scanReceiptRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan receipt: %w", err)
	}
	return rec, nil
}

func scanReceiptRow(row pgx.Row) (*domain.Receipt, error) {
	rec := &domain.Receipt{}
	var bundleHash, anchorTxID, xmlPath, bundlePath *string
	err := row.Scan(
		&rec.ID, &rec.ProjectID, &rec.Reference, &rec.TipTxHash, &rec.Chain,
		&rec.Amount, &rec.Currency, &rec.SenderWallet, &rec.ReceiverWallet,
		&rec.Status, &bundleHash, &anchorTxID, &rec.RefundOf,
		&xmlPath, &bundlePath, &rec.CallbackURL,
		&rec.CreatedAt, &rec.AnchoredAt,
	)
	if err != nil {
		return nil, err
	}
	rec.BundleHash = deref(bundleHash)
	rec.AnchorTxID = deref(anchorTxID)
	rec.XMLPath = deref(xmlPath)
	rec.BundlePath = deref(bundlePath)
	return rec, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
