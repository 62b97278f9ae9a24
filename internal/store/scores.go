package store

import (
	"database/sql"
	"time"

	"github.com/tendhq/tend/internal/score"
)

// ScoreSnapshot is a persisted scoring result, kept for trend display.
type ScoreSnapshot struct {
	ID            int64       `json:"id"`
	UserID        string      `json:"user_id"`
	TakenAt       time.Time   `json:"taken_at"`
	Window        string      `json:"window"`
	Score         score.Score `json:"score"`
	Predicted     float64     `json:"predicted,omitempty"`
	HasPrediction bool        `json:"has_prediction"`
}

// InsertScoreSnapshot records a scoring result and returns its id.
func (db *DB) InsertScoreSnapshot(s ScoreSnapshot) (int64, error) {
	if s.TakenAt.IsZero() {
		s.TakenAt = time.Now().UTC()
	}

	var predicted any
	if s.HasPrediction {
		predicted = s.Predicted
	}

	res, err := db.conn.Exec(
		`INSERT INTO score_snapshots
		(user_id, taken_at, window, focus, consistency, energy, total, predicted, has_prediction)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.UserID, s.TakenAt.UTC().Format(timeLayout), s.Window,
		s.Score.Focus, s.Score.Consistency, s.Score.Energy, s.Score.Total,
		predicted, s.HasPrediction,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// LatestScoreSnapshot returns a user's most recent snapshot, or nil when
// none exists.
func (db *DB) LatestScoreSnapshot(userID string) (*ScoreSnapshot, error) {
	row := db.conn.QueryRow(
		`SELECT id, user_id, taken_at, window, focus, consistency, energy, total, predicted, has_prediction
		FROM score_snapshots WHERE user_id = ? ORDER BY id DESC LIMIT 1`, userID,
	)

	var s ScoreSnapshot
	var takenAt string
	var predicted sql.NullFloat64
	err := row.Scan(&s.ID, &s.UserID, &takenAt, &s.Window,
		&s.Score.Focus, &s.Score.Consistency, &s.Score.Energy, &s.Score.Total,
		&predicted, &s.HasPrediction)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	s.Predicted = predicted.Float64
	return &s, nil
}
