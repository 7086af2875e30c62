package postgres

import (
	"context"
	"testing"
	"time"

	"iso-evidence-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainAnchorRepo_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewChainAnchorRepo(mock)
	anchor := &domain.ChainAnchor{
		ReceiptID:  uuid.New(),
		Chain:      "flare",
		TxID:       "0xanchor",
		AnchoredAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO chain_anchors .+ ON CONFLICT").
		WithArgs(anchor.ReceiptID, anchor.Chain, anchor.TxID, anchor.AnchoredAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Upsert(context.Background(), anchor)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChainAnchorRepo_ListByReceipt(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewChainAnchorRepo(mock)
	receiptID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM chain_anchors WHERE receipt_id =").
		WithArgs(receiptID).
		WillReturnRows(pgxmock.NewRows([]string{"receipt_id", "chain", "txid", "anchored_at"}).
			AddRow(receiptID, "flare", "0xa", now).
			AddRow(receiptID, "songbird", "0xb", now.Add(time.Minute)))

	anchors, err := repo.ListByReceipt(context.Background(), receiptID)
	require.NoError(t, err)
	require.Len(t, anchors, 2)
	assert.Equal(t, "flare", anchors[0].Chain)
	assert.Equal(t, "songbird", anchors[1].Chain)
}

func TestChainAnchorRepo_Exists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewChainAnchorRepo(mock)
	receiptID := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(receiptID, "flare").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), receiptID, "flare")
	require.NoError(t, err)
	assert.True(t, exists)
}
