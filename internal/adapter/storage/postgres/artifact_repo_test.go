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

func TestArtifactRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewArtifactRepo(mock)
	artifact := &domain.Artifact{
		ReceiptID: uuid.New(),
		Type:      "pain.001",
		Path:      "artifacts/x/pain001.xml",
		SHA256:    "0xdeadbeef",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO artifacts").
		WithArgs(artifact.ReceiptID, artifact.Type, artifact.Path, artifact.SHA256, artifact.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), artifact)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArtifactRepo_ListByReceipt(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewArtifactRepo(mock)
	receiptID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM artifacts WHERE receipt_id =").
		WithArgs(receiptID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "receipt_id", "type", "path", "sha256", "created_at"}).
			AddRow(int64(1), receiptID, "compliance", "artifacts/x/compliance.json", "0xaa", now).
			AddRow(int64(2), receiptID, "bundle", "artifacts/x/evidence.zip", "0xbb", now))

	artifacts, err := repo.ListByReceipt(context.Background(), receiptID)
	require.NoError(t, err)
	require.Len(t, artifacts, 2)
	assert.Equal(t, "compliance", artifacts[0].Type)
	assert.Equal(t, int64(2), artifacts[1].ID)
}
