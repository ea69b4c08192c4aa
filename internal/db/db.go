package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// busyTimeoutMS is how long a write waits on a locked database before
// failing. Admin mutations and page reads share one file, so writes
// queue instead of erroring under WAL.
const busyTimeoutMS = 5000

// Open opens the SQLite database at path and applies the connection
// settings the site depends on: WAL journaling so public page reads
// never block on admin writes, a busy timeout, and enforced foreign
// keys.
func Open(path string) (*sql.DB, error) {
	sdb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	for _, pragma := range []string{
		"journal_mode=WAL",
		fmt.Sprintf("busy_timeout=%d", busyTimeoutMS),
		"foreign_keys=ON",
		"synchronous=NORMAL",
	} {
		if _, err := sdb.Exec("PRAGMA " + pragma); err != nil {
			sdb.Close()
			return nil, fmt.Errorf("applying pragma %s: %w", pragma, err)
		}
	}

	return sdb, nil
}

// OpenAndMigrate opens the database and brings the schema up to date.
// Serving always wants both, so this is the entry point cmd uses.
func OpenAndMigrate(path string) (*sql.DB, error) {
	sdb, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := Migrate(sdb); err != nil {
		sdb.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return sdb, nil
}
