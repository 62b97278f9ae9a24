package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id         TEXT PRIMARY KEY,
			name       TEXT,
			email      TEXT,
			chronotype TEXT,
			created_at TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS tasks (
			id           TEXT PRIMARY KEY,
			user_id      TEXT NOT NULL REFERENCES users(id),
			title        TEXT NOT NULL,
			status       TEXT NOT NULL,
			priority     INTEGER,
			category     TEXT,
			due_at       TEXT,
			completed_at TEXT,
			created_at   TEXT NOT NULL,
			updated_at   TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS event_logs (
			id        TEXT PRIMARY KEY,
			user_id   TEXT NOT NULL REFERENCES users(id),
			task_id   TEXT,
			kind      TEXT NOT NULL,
			payload   TEXT,
			device    TEXT,
			timestamp TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS plants (
			user_id      TEXT PRIMARY KEY REFERENCES users(id),
			level        INTEGER NOT NULL,
			last_updated TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS score_snapshots (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id        TEXT NOT NULL REFERENCES users(id),
			taken_at       TEXT NOT NULL,
			window         TEXT NOT NULL,
			focus          INTEGER NOT NULL,
			consistency    INTEGER NOT NULL,
			energy         INTEGER NOT NULL,
			total          INTEGER NOT NULL,
			predicted      REAL,
			has_prediction BOOLEAN NOT NULL DEFAULT false
		)`,

		`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_events_user_time ON event_logs(user_id, timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_user ON score_snapshots(user_id, taken_at)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return err
		}
	}

	if _, err := db.conn.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	_, err := db.conn.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion)
	return err
}
