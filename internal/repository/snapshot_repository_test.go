package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirenow/hirenow-backend/internal/db"
)

func newTestRepo(t *testing.T) *SnapshotRepository {
	t.Helper()
	ctx := context.Background()

	conn, err := db.NewSQLite(ctx, filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, db.InitSchema(ctx, conn))
	return NewSnapshotRepository(conn)
}

func TestSnapshotRepository_Load_Empty(t *testing.T) {
	repo := newTestRepo(t)

	payload, err := repo.Load(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, payload)
}

func TestSnapshotRepository_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	state := []byte(`{"laborers":[],"contractors":[],"projects":[],"hireRequests":[],"currentRole":null,"currentUserId":null}`)
	assert.NoError(t, repo.Save(ctx, state))

	loaded, err := repo.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, state, loaded)
}

func TestSnapshotRepository_Save_Overwrites(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	assert.NoError(t, repo.Save(ctx, []byte(`{"version":1}`)))
	assert.NoError(t, repo.Save(ctx, []byte(`{"version":2}`)))

	loaded, err := repo.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"version":2}`), loaded)
}
