// Package plant implements the gamified growth indicator: a level from 0
// to 10 driven by the ratio of tasks completed among tasks created in the
// current week.
package plant

import (
	"time"

	"github.com/tendhq/tend/internal/journal"
)

// MaxLevel is the fully grown plant.
const MaxLevel = 10

// State is a user's persisted plant.
type State struct {
	UserID      string    `json:"user_id"`
	Level       int       `json:"level"`
	LastUpdated time.Time `json:"last_updated"`
}

// Update is the outcome of one growth evaluation.
type Update struct {
	Level     int    `json:"current_level"`
	Previous  int    `json:"previous_level"`
	LeveledUp bool   `json:"leveled_up"`
	Message   string `json:"message"`
}

// WeekStart returns Monday 00:00:00 UTC of the week containing t.
func WeekStart(t time.Time) time.Time {
	t = journal.NormalizeUTC(t)
	// time.Weekday counts Sunday as 0; shift so Monday is the week anchor.
	offset := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -offset)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// LevelFor maps a weekly completion ratio to a level. No tasks this week
// means level 0: the plant only grows on real activity.
func LevelFor(totalTasks, completedTasks int) int {
	if totalTasks == 0 {
		return 0
	}
	level := int(float64(completedTasks) / float64(totalTasks) * float64(MaxLevel))
	if level > MaxLevel {
		level = MaxLevel
	}
	return level
}

// Grow evaluates this week's tasks against the previous level and returns
// the new state plus a display message.
func Grow(previousLevel int, tasks []journal.Task, now time.Time) Update {
	weekStart := WeekStart(now)

	total, completed := 0, 0
	for _, t := range tasks {
		if journal.NormalizeUTC(t.CreatedAt).Before(weekStart) {
			continue
		}
		total++
		if t.Status == journal.StatusCompleted {
			completed++
		}
	}

	level := LevelFor(total, completed)
	u := Update{
		Level:     level,
		Previous:  previousLevel,
		LeveledUp: level > previousLevel,
	}
	switch {
	case u.LeveledUp:
		u.Message = "Your plant grew!"
	case level < previousLevel:
		u.Message = "Your plant wilted a little."
	default:
		u.Message = "Your plant is holding steady."
	}
	return u
}
