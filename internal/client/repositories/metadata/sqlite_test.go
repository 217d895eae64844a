package metadata

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	require.NoError(t, err)

	return NewSQLiteRepository(db)
}

func TestSQLiteRepository_SetAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.Set(ctx, "auth_token", []byte("t1")))

	value, err := repo.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, []byte("t1"), value)
}

func TestSQLiteRepository_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.Set(ctx, "auth_token", []byte("old")))
	require.NoError(t, repo.Set(ctx, "auth_token", []byte("new")))

	value, err := repo.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), value)
}

func TestSQLiteRepository_GetMissingKey(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.Set(ctx, "auth_token", []byte("t1")))
	require.NoError(t, repo.Delete(ctx, "auth_token"))

	_, err := repo.Get(ctx, "auth_token")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, repo.Delete(ctx, "auth_token"), "deleting a missing key is fine")
}

func TestSQLiteRepository_Clear(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.Set(ctx, "a", []byte("1")))
	require.NoError(t, repo.Set(ctx, "b", []byte("2")))
	require.NoError(t, repo.Clear(ctx))

	_, err := repo.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrNotFound)
}
