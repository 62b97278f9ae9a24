package store

import (
	"database/sql"
	"time"

	"github.com/tendhq/tend/internal/plant"
)

// GetPlant returns a user's plant state, or a level-zero state if the
// user has never grown one.
func (db *DB) GetPlant(userID string) (plant.State, error) {
	row := db.conn.QueryRow(
		"SELECT user_id, level, last_updated FROM plants WHERE user_id = ?", userID,
	)

	var s plant.State
	var lastUpdated string
	err := row.Scan(&s.UserID, &s.Level, &lastUpdated)
	if err == sql.ErrNoRows {
		return plant.State{UserID: userID}, nil
	}
	if err != nil {
		return plant.State{}, err
	}
	s.LastUpdated, _ = time.Parse(time.RFC3339, lastUpdated)
	return s, nil
}

// SavePlant upserts a user's plant state.
func (db *DB) SavePlant(s plant.State) error {
	_, err := db.conn.Exec(
		`INSERT INTO plants (user_id, level, last_updated) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET level = excluded.level, last_updated = excluded.last_updated`,
		s.UserID, s.Level, s.LastUpdated.UTC().Format(timeLayout),
	)
	return err
}
