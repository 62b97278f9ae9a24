// Package journal defines the domain records the scoring engine consumes:
// behavioral events, tasks, and user profiles. Records are produced by the
// ingest layers (CLI, HTTP API, store) and are read-only to the engine.
package journal

import "time"

// Event is a single immutable behavioral observation. TaskID is empty for
// profile-level events such as daily check-ins or wake-time logs.
type Event struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	TaskID    string            `json:"task_id,omitempty"`
	Kind      Kind              `json:"kind"`
	Payload   map[string]string `json:"payload,omitempty"`
	Device    string            `json:"device,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

// Task lifecycle states.
const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
	StatusMissed    TaskStatus = "missed"
)

// Task is a unit of work scoped to one user. CompletedAt is set iff the
// status is completed.
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Status      TaskStatus `json:"status"`
	Priority    int        `json:"priority,omitempty"`
	Category    string     `json:"category,omitempty"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// User is the profile the engine scores against.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name,omitempty"`
	Email      string    `json:"email,omitempty"`
	Chronotype string    `json:"chronotype,omitempty"` // morning / night_owl / neutral
	CreatedAt  time.Time `json:"created_at"`
}
