// Package insights aggregates behavioral patterns over a reporting window:
// task outcomes, snooze behavior, when in the day completions land, and
// how they spread across weekdays. The feedback-composition layer consumes
// these alongside the daily score.
package insights

import (
	"github.com/tendhq/tend/internal/feature"
	"github.com/tendhq/tend/internal/journal"
)

// Hour buckets for completion timing, keyed by inclusive hour ranges.
var timingBuckets = []struct {
	key  string
	from int
	to   int
}{
	{"0-5", 0, 5},
	{"6-11", 6, 11},
	{"12-17", 12, 17},
	{"18-23", 18, 23},
}

// weekdayOrder fixes the reporting order (and tie-breaks for MostCommon).
var weekdayOrder = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// TaskStats summarizes task outcomes in the window.
type TaskStats struct {
	Completed      int     `json:"completed"`
	Pending        int     `json:"pending"`
	Missed         int     `json:"missed"`
	CompletionRate float64 `json:"completion_rate"`
}

// SnoozeStats summarizes how often reminders were deferred.
type SnoozeStats struct {
	SnoozeCount int     `json:"snooze_count"`
	RemindCount int     `json:"remind_count"`
	SnoozeRate  float64 `json:"snooze_rate"`
}

// CompletionTiming buckets completions by hour of day.
type CompletionTiming struct {
	Buckets map[string]int `json:"buckets"`
}

// WeekdayDistribution shows which days completions concentrate on.
type WeekdayDistribution struct {
	Counts        map[string]int `json:"counts"`
	MostCommon    string         `json:"most_common,omitempty"`
	Concentration float64        `json:"concentration"`
}

// Report is the full insights result for one user and window.
type Report struct {
	Range      string              `json:"range"` // "today", "week", or "all"
	Chronotype string              `json:"chronotype"`
	Tasks      TaskStats           `json:"task_stats"`
	Snooze     SnoozeStats         `json:"snooze"`
	Timing     CompletionTiming    `json:"completion_timing"`
	Weekday    WeekdayDistribution `json:"weekday"`
}

// Analyze builds a report over the supplied window. Like the scoring core
// it never fails; empty inputs produce zeroed stats.
func Analyze(events []journal.Event, tasks []journal.Task, user journal.User, windowName string) Report {
	chronotype := user.Chronotype
	if chronotype == "" {
		chronotype = "neutral"
	}
	return Report{
		Range:      windowName,
		Chronotype: chronotype,
		Tasks:      taskStats(tasks),
		Snooze:     snoozeStats(events),
		Timing:     completionTiming(tasks),
		Weekday:    weekdayDistribution(tasks),
	}
}

func taskStats(tasks []journal.Task) TaskStats {
	s := TaskStats{}
	for _, t := range tasks {
		switch t.Status {
		case journal.StatusCompleted:
			s.Completed++
		case journal.StatusPending:
			s.Pending++
		case journal.StatusMissed:
			s.Missed++
		}
	}
	s.CompletionRate = feature.CompletionRate(s.Completed, s.Missed)
	return s
}

func snoozeStats(events []journal.Event) SnoozeStats {
	s := SnoozeStats{}
	for _, e := range events {
		switch e.Kind {
		case journal.KindTaskSnoozed:
			s.SnoozeCount++
		case journal.KindReminderSent:
			s.RemindCount++
		}
	}
	if total := s.SnoozeCount + s.RemindCount; total > 0 {
		s.SnoozeRate = float64(s.SnoozeCount) / float64(total)
	}
	return s
}

func completionTiming(tasks []journal.Task) CompletionTiming {
	buckets := make(map[string]int, len(timingBuckets))
	for _, b := range timingBuckets {
		buckets[b.key] = 0
	}
	for _, t := range tasks {
		if t.CompletedAt == nil {
			continue
		}
		hour := journal.NormalizeUTC(*t.CompletedAt).Hour()
		for _, b := range timingBuckets {
			if hour >= b.from && hour <= b.to {
				buckets[b.key]++
				break
			}
		}
	}
	return CompletionTiming{Buckets: buckets}
}

func weekdayDistribution(tasks []journal.Task) WeekdayDistribution {
	counts := make(map[string]int, len(weekdayOrder))
	total := 0
	for _, t := range tasks {
		if t.CompletedAt == nil {
			continue
		}
		day := journal.NormalizeUTC(*t.CompletedAt).Format("Mon")
		counts[day]++
		total++
	}

	d := WeekdayDistribution{Counts: counts}
	if total == 0 {
		return d
	}

	max := 0
	for _, day := range weekdayOrder {
		if counts[day] > max {
			max = counts[day]
			d.MostCommon = day
		}
	}
	d.Concentration = float64(max) / float64(total)
	return d
}
