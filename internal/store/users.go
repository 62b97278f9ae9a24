package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/tendhq/tend/internal/journal"
)

// CreateUser inserts a user, assigning an id and creation time when unset,
// and returns the stored record.
func (db *DB) CreateUser(u journal.User) (journal.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	_, err := db.conn.Exec(
		"INSERT INTO users (id, name, email, chronotype, created_at) VALUES (?, ?, ?, ?, ?)",
		u.ID, u.Name, u.Email, u.Chronotype, u.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return journal.User{}, err
	}
	return u, nil
}

// GetUser returns the user with the given id, or nil if none exists.
func (db *DB) GetUser(id string) (*journal.User, error) {
	row := db.conn.QueryRow(
		"SELECT id, name, email, chronotype, created_at FROM users WHERE id = ?", id,
	)

	var u journal.User
	var createdAt string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Chronotype, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &u, nil
}

// ListUsers returns all users ordered by creation time.
func (db *DB) ListUsers() ([]journal.User, error) {
	rows, err := db.conn.Query(
		"SELECT id, name, email, chronotype, created_at FROM users ORDER BY created_at",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []journal.User
	for rows.Next() {
		var u journal.User
		var createdAt string
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Chronotype, &createdAt); err != nil {
			return nil, err
		}
		u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		users = append(users, u)
	}
	return users, rows.Err()
}
