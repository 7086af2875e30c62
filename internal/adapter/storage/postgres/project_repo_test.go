package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"iso-evidence-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAnchoring() domain.AnchoringConfig {
	return domain.AnchoringConfig{
		ExecutionMode: domain.ExecutionModeTenant,
		Chains: []domain.ChainConfig{
			{Name: "coston2", Contract: "0xC2", RPCURL: "http://c2"},
		},
	}
}

func TestProjectRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProjectRepo(mock)
	project := &domain.Project{
		ID:        uuid.New(),
		Name:      "acme",
		Anchoring: testAnchoring(),
		CreatedAt: time.Now().UTC(),
	}
	anchoring, err := json.Marshal(project.Anchoring)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO projects").
		WithArgs(project.ID, project.Name, anchoring, project.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), project)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepo_GetByID_RoundTripsAnchoring(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProjectRepo(mock)
	id := uuid.New()
	anchoring, err := json.Marshal(testAnchoring())
	require.NoError(t, err)

	mock.ExpectQuery("SELECT .+ FROM projects WHERE id =").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "anchoring", "created_at"}).
			AddRow(id, "acme", anchoring, time.Now().UTC()))

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.ExecutionModeTenant, got.Anchoring.ExecutionMode)
	require.Len(t, got.Anchoring.Chains, 1)
	assert.Equal(t, "coston2", got.Anchoring.Chains[0].Name)
}

func TestProjectRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProjectRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM projects WHERE id =").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "anchoring", "created_at"}))

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProjectRepo_UpdateAnchoring(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProjectRepo(mock)
	id := uuid.New()
	cfg := testAnchoring()
	anchoring, err := json.Marshal(cfg)
	require.NoError(t, err)

	mock.ExpectExec("UPDATE projects SET anchoring").
		WithArgs(anchoring, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateAnchoring(context.Background(), id, cfg)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
