package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/sitepace/internal/db"
)

// NewTestDB opens a migrated in-memory SQLite database scoped to the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}
