package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tendhq/tend/internal/journal"
)

// CreateTask inserts a task, assigning an id, pending status, and
// timestamps when unset, and returns the stored record.
func (db *DB) CreateTask(t journal.Task) (journal.Task, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = journal.StatusPending
	}
	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = t.CreatedAt
	}

	_, err := db.conn.Exec(
		`INSERT INTO tasks
		(id, user_id, title, status, priority, category, due_at, completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Title, t.Status, t.Priority, t.Category,
		timePtrString(t.DueAt), timePtrString(t.CompletedAt),
		t.CreatedAt.UTC().Format(timeLayout), t.UpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return journal.Task{}, err
	}
	return t, nil
}

// CompleteTask marks a task completed at the given time.
func (db *DB) CompleteTask(taskID string, at time.Time) error {
	at = at.UTC()
	res, err := db.conn.Exec(
		"UPDATE tasks SET status = ?, completed_at = ?, updated_at = ? WHERE id = ?",
		journal.StatusCompleted, at.Format(timeLayout), at.Format(timeLayout), taskID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no task with id %s", taskID)
	}
	return nil
}

// MarkTaskMissed marks a task missed.
func (db *DB) MarkTaskMissed(taskID string, at time.Time) error {
	_, err := db.conn.Exec(
		"UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?",
		journal.StatusMissed, at.UTC().Format(timeLayout), taskID,
	)
	return err
}

// ListTasks returns every task for a user ordered by creation time. Task
// collections are window-agnostic: scoring windows apply to events, while
// tasks are supplied whole and bucketed by their own timestamps.
func (db *DB) ListTasks(userID string) ([]journal.Task, error) {
	rows, err := db.conn.Query(
		`SELECT id, user_id, title, status, priority, category, due_at, completed_at, created_at, updated_at
		FROM tasks WHERE user_id = ? ORDER BY created_at`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []journal.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func scanTask(rows *sql.Rows) (journal.Task, error) {
	var t journal.Task
	var priority sql.NullInt64
	var category, dueAt, completedAt sql.NullString
	var createdAt, updatedAt string

	err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Status, &priority, &category,
		&dueAt, &completedAt, &createdAt, &updatedAt)
	if err != nil {
		return journal.Task{}, err
	}

	t.Priority = int(priority.Int64)
	t.Category = category.String
	t.DueAt = parseTimePtr(dueAt)
	t.CompletedAt = parseTimePtr(completedAt)
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return t, nil
}

func timePtrString(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(timeLayout)
}

func parseTimePtr(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}
