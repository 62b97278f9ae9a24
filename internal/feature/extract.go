package feature

import (
	"time"

	"github.com/tendhq/tend/internal/journal"
	"github.com/tendhq/tend/internal/segment"
)

// Defaults substituted when a signal is absent. The average-session
// fallback keeps a trained model away from an out-of-distribution zero.
const (
	DefaultAvgSessionMinutes     = 10.0
	DefaultWakeHour              = 9
	DefaultFirstActionDelayHours = 5.0
)

// Extract reduces the supplied window of events and tasks to a feature
// vector. It never fails: every field has a defined fallback, and
// malformed payload timestamps are treated as absent values.
func Extract(events []journal.Event, tasks []journal.Task, user journal.User) Vector {
	completed, overdue := CompletionCounts(tasks)

	v := Vector{
		CompletedTasks: completed,
		OverdueTasks:   overdue,
		CompletionRate: CompletionRate(completed, overdue),
		// Pending a stable consecutive-completion source; intentionally
		// not the display streak, which models were never trained on.
		StreakDays:            0,
		DailyCheckIn:          boolToInt(HasDailyCheckIn(events)),
		WakeHour:              DefaultWakeHour,
		FirstActionDelayHours: DefaultFirstActionDelayHours,
	}

	// Session metrics come from paired task sessions only; the idle-gap
	// fallback is a scoring concern, not a model feature.
	m := segment.ComputeMetrics(segment.PairSessions(events))
	v.SessionCount = m.Count
	v.AvgSessionMinutes = m.AvgMinutes
	if v.SessionCount == 0 && v.AvgSessionMinutes == 0.0 {
		v.AvgSessionMinutes = DefaultAvgSessionMinutes
	}

	if wake, ok := WakeTime(events); ok {
		v.WakeHour = wake.Hour()
		if delay, ok := FirstActionDelayHours(events, wake); ok {
			v.FirstActionDelayHours = delay
		}
	}

	return v
}

// CompletionCounts tallies completed and missed tasks over the supplied
// collection; the caller controls the reporting window.
func CompletionCounts(tasks []journal.Task) (completed, overdue int) {
	for _, t := range tasks {
		switch t.Status {
		case journal.StatusCompleted:
			completed++
		case journal.StatusMissed:
			overdue++
		}
	}
	return completed, overdue
}

// CompletionRate returns completed/(completed+overdue), or 0 when there
// is nothing to divide by.
func CompletionRate(completed, overdue int) float64 {
	denom := completed + overdue
	if denom == 0 {
		return 0.0
	}
	return float64(completed) / float64(denom)
}

// HasDailyCheckIn reports whether any event in the window is a check-in.
func HasDailyCheckIn(events []journal.Event) bool {
	for _, e := range events {
		if e.Kind == journal.KindDailyCheckIn {
			return true
		}
	}
	return false
}

// WakeTime returns the wake timestamp parsed from the first wake-time
// event carrying a payload. A missing or unparseable "time" value reads
// as no wake log at all.
func WakeTime(events []journal.Event) (time.Time, bool) {
	for _, e := range events {
		if e.Kind != journal.KindWakeTimeLogged || e.Payload == nil {
			continue
		}
		return journal.ParseISO(e.Payload["time"])
	}
	return time.Time{}, false
}

// FirstActionDelayHours measures hours from the wake time to the first
// event that is not itself a wake log, floored at zero so a wake log
// recorded after the fact never produces a negative delay.
func FirstActionDelayHours(events []journal.Event, wake time.Time) (float64, bool) {
	for _, e := range events {
		if e.Kind == journal.KindWakeTimeLogged {
			continue
		}
		delay := journal.NormalizeUTC(e.Timestamp).Sub(journal.NormalizeUTC(wake)).Hours()
		if delay < 0 {
			delay = 0
		}
		return delay, true
	}
	return 0, false
}

// NoiseCount tallies low-value interaction events (screen transitions and
// button clicks) used for the focus penalty.
func NoiseCount(events []journal.Event) int {
	n := 0
	for _, e := range events {
		if e.Kind == journal.KindScreenTransition || e.Kind == journal.KindButtonClicked {
			n++
		}
	}
	return n
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
