package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/student-roster/internal/config"
)

func newTestDB(t *testing.T, path, key string) *SQLite {
	t.Helper()
	db, err := New(&config.Config{StoragePath: path, StorageKey: key})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoad_EmptyDatabase(t *testing.T) {
	db := newTestDB(t, filepath.Join(t.TempDir(), "roster.db"), "students")

	snapshot, ok, err := db.Load()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, snapshot)
}

func TestSave_OverwritesWholeValue(t *testing.T) {
	db := newTestDB(t, filepath.Join(t.TempDir(), "roster.db"), "students")

	require.NoError(t, db.Save(`[{"id":"a"}]`))
	require.NoError(t, db.Save(`[]`))

	snapshot, ok, err := db.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, snapshot)

	var rows int
	require.NoError(t, db.Db.QueryRow("SELECT COUNT(*) FROM kv").Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestSave_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.db")

	first := newTestDB(t, path, "students")
	require.NoError(t, first.Save(`[{"id":"x"}]`))
	require.NoError(t, first.Close())

	second := newTestDB(t, path, "students")
	snapshot, ok, err := second.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"x"}]`, snapshot)
}

func TestKeysAreIsolated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.db")

	a := newTestDB(t, path, "a")
	b := newTestDB(t, path, "b")
	require.NoError(t, a.Save("alpha"))

	_, ok, err := b.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNew_RejectsEmptyKey(t *testing.T) {
	_, err := New(&config.Config{StoragePath: filepath.Join(t.TempDir(), "x.db")})
	assert.Error(t, err)
}
