package feature

import (
	"time"

	"github.com/tendhq/tend/internal/journal"
)

// DisplayStreak counts consecutive calendar days, walking backward from
// now, on which at least one task was completed. The walk stops at the
// first day with zero completions, so a user with no completion today has
// a streak of zero.
//
// This is the presentation-facing streak. It is deliberately not the
// streak_days feature, which stays at zero until a model is trained
// against a real consecutive-completion signal.
func DisplayStreak(tasks []journal.Task, now time.Time) int {
	completedDays := make(map[string]bool)
	for _, t := range tasks {
		if t.Status != journal.StatusCompleted || t.CompletedAt == nil {
			continue
		}
		completedDays[dayKey(*t.CompletedAt)] = true
	}

	streak := 0
	day := journal.NormalizeUTC(now)
	for completedDays[dayKey(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func dayKey(t time.Time) string {
	return journal.NormalizeUTC(t).Format("2006-01-02")
}
