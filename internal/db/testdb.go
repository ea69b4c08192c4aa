package db

import (
	"database/sql"
	"testing"
)

// NewTestDB creates a fresh in-memory SQLite database with the schema applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := OpenAndMigrate(":memory:")
	if err != nil {
		t.Fatalf("preparing test database: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	return db
}
