package database

import (
	"context"
	"database/sql"
	"strings"
	"testing"
)

// newTestDB opens a fresh in-memory store named after the test and loads the
// sample data into it.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := Open(MemoryDSN(name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := Seed(context.Background(), db); err != nil {
		t.Fatalf("seed test store: %v", err)
	}

	return db
}
