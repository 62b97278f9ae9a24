package feature

import (
	"testing"
	"time"

	"github.com/tendhq/tend/internal/journal"
)

func completedOn(day time.Time) journal.Task {
	at := day
	return journal.Task{Status: journal.StatusCompleted, CompletedAt: &at}
}

func TestDisplayStreak(t *testing.T) {
	now := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)
	today := now
	yesterday := now.AddDate(0, 0, -1)
	threeDaysAgo := now.AddDate(0, 0, -3)

	cases := []struct {
		name  string
		tasks []journal.Task
		want  int
	}{
		{"no tasks", nil, 0},
		{"today only", []journal.Task{completedOn(today)}, 1},
		{"two consecutive days", []journal.Task{completedOn(today), completedOn(yesterday)}, 2},
		{"broken by a gap", []journal.Task{completedOn(today), completedOn(threeDaysAgo)}, 1},
		{"nothing today", []journal.Task{completedOn(yesterday)}, 0},
		{"pending today does not count", []journal.Task{{Status: journal.StatusPending}}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DisplayStreak(tc.tasks, now); got != tc.want {
				t.Errorf("expected streak %d, got %d", tc.want, got)
			}
		})
	}
}

func TestDisplayStreak_IgnoresMissingCompletedAt(t *testing.T) {
	tasks := []journal.Task{{Status: journal.StatusCompleted}}
	if got := DisplayStreak(tasks, time.Now().UTC()); got != 0 {
		t.Errorf("expected 0 for completed task with no timestamp, got %d", got)
	}
}
