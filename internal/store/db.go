// Package store provides SQLite persistence for users, tasks, event logs,
// plant state, and score snapshots. It is the inbound collaborator the
// scoring engine reads from; the engine itself never touches the database.
package store

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// timeLayout is RFC3339 with a fixed nanosecond width. Trailing zeros
// are kept so stored UTC stamps keep sub-second precision and still
// compare correctly as strings in ORDER BY and range queries.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// DB wraps a sql.DB connection to the tend SQLite database.
type DB struct {
	conn *sql.DB
}

// Open opens or creates the SQLite database at the given path.
// It creates the parent directory if it does not exist.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = conn.Close()
		return nil, err
	}

	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}

	if err := db.Migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

// OpenInMemory opens an in-memory SQLite database, useful for testing.
func OpenInMemory() (*DB, error) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.Migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn returns the underlying sql.DB for advanced queries.
func (db *DB) Conn() *sql.DB {
	return db.conn
}
