package store

import (
	"fmt"
	"time"
)

// Window bounds a reporting period. A zero From or To leaves that side
// unbounded. Choosing the window is the caller's job; the scoring engine
// only ever sees the records inside it.
type Window struct {
	Name string
	From time.Time
	To   time.Time
}

// WindowFor resolves a window name relative to now. Supported names are
// "today" (calendar day in UTC), "week" (rolling seven days), and "all".
func WindowFor(name string, now time.Time) (Window, error) {
	now = now.UTC()
	switch name {
	case "today":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return Window{Name: name, From: start, To: start.AddDate(0, 0, 1)}, nil
	case "week":
		return Window{Name: name, From: now.AddDate(0, 0, -7), To: now}, nil
	case "all":
		return Window{Name: name}, nil
	default:
		return Window{}, fmt.Errorf("unknown window %q (want today, week, or all)", name)
	}
}
