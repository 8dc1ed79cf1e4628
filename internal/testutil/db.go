package testutil

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/nacre/internal/store/sqlite"
)

// NewTestDB returns a migrated in-memory database, closed at test end.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.NewMemoryDB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// NewTestStore returns a store over a migrated in-memory database. The
// underlying database is closed at test end; do not call Close on the
// store yourself.
func NewTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	return sqlite.NewStore(NewTestDB(t))
}
