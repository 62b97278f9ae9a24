package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/tendhq/tend/internal/journal"
)

// InsertEvent records an event, assigning an id and timestamp when unset,
// and returns the stored record. The payload is stored as JSON.
func (db *DB) InsertEvent(e journal.Event) (journal.Event, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}

	var payload any
	if len(e.Payload) > 0 {
		data, err := json.Marshal(e.Payload)
		if err != nil {
			return journal.Event{}, err
		}
		payload = string(data)
	}

	_, err := db.conn.Exec(
		`INSERT INTO event_logs (id, user_id, task_id, kind, payload, device, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, nullIfEmpty(e.TaskID), e.Kind.String(), payload,
		nullIfEmpty(e.Device), e.Timestamp.UTC().Format(timeLayout),
	)
	if err != nil {
		return journal.Event{}, err
	}
	return e, nil
}

// EventsInWindow returns a user's events inside the window, ordered by
// timestamp ascending. The half-open bound [From, To) keeps midnight
// events in exactly one day.
func (db *DB) EventsInWindow(userID string, w Window) ([]journal.Event, error) {
	query := "SELECT id, user_id, task_id, kind, payload, device, timestamp FROM event_logs WHERE user_id = ?"
	args := []any{userID}

	if !w.From.IsZero() {
		query += " AND timestamp >= ?"
		args = append(args, w.From.UTC().Format(timeLayout))
	}
	if !w.To.IsZero() {
		query += " AND timestamp < ?"
		args = append(args, w.To.UTC().Format(timeLayout))
	}
	query += " ORDER BY timestamp ASC"

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []journal.Event
	for rows.Next() {
		var e journal.Event
		var taskID, payload, device sql.NullString
		var kind, timestamp string
		if err := rows.Scan(&e.ID, &e.UserID, &taskID, &kind, &payload, &device, &timestamp); err != nil {
			return nil, err
		}
		e.TaskID = taskID.String
		e.Kind = journal.ParseKind(kind)
		e.Device = device.String
		e.Timestamp, _ = time.Parse(time.RFC3339, timestamp)
		if payload.Valid && payload.String != "" {
			// A corrupt payload reads as no payload; the engine treats
			// absent values with its documented defaults.
			_ = json.Unmarshal([]byte(payload.String), &e.Payload)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
