// Package segment derives bounded work sessions from raw event streams.
// Two strategies exist: pairing task-started/task-completed markers per
// task, and splitting the raw timestamp sequence on idle gaps. Pairing is
// preferred; the idle-gap split is the fallback when no pairs exist.
package segment

import (
	"sort"
	"time"

	"github.com/tendhq/tend/internal/journal"
)

// IdleGap is the inactivity threshold that splits raw events into
// separate sessions.
const IdleGap = 15 * time.Minute

// Session is a derived interval of focused activity. End is never before
// Start; idle-gap sessions may be a single instant (End == Start).
type Session struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Minutes returns the session duration in minutes.
func (s Session) Minutes() float64 {
	return s.End.Sub(s.Start).Minutes()
}

// PairSessions correlates task-started events with the next task-completed
// event carrying the same task id. Events are consumed in the order
// supplied: callers that need timestamp-ordered pairing must sort first.
// A second start before a completion overwrites the tracked start. A pair
// is emitted only when the completion strictly follows the start; starts
// with no later completion are dropped.
func PairSessions(events []journal.Event) []Session {
	started := make(map[string]time.Time)
	var sessions []Session

	for _, e := range events {
		if e.TaskID == "" {
			continue
		}
		ts := journal.NormalizeUTC(e.Timestamp)

		switch e.Kind {
		case journal.KindTaskStarted:
			started[e.TaskID] = ts
		case journal.KindTaskCompleted:
			start, ok := started[e.TaskID]
			if !ok {
				continue
			}
			delete(started, e.TaskID)
			if ts.After(start) {
				sessions = append(sessions, Session{Start: start, End: ts})
			}
		}
	}

	return sessions
}

// IdleGapSessions splits the full event stream into sessions on gaps of
// IdleGap or more. Timestamps are sorted ascending first. The final open
// session is always emitted, even as a single instant.
func IdleGapSessions(events []journal.Event) []Session {
	if len(events) == 0 {
		return nil
	}

	stamps := make([]time.Time, 0, len(events))
	for _, e := range events {
		stamps = append(stamps, journal.NormalizeUTC(e.Timestamp))
	}
	sort.Slice(stamps, func(i, j int) bool { return stamps[i].Before(stamps[j]) })

	var sessions []Session
	cur := Session{Start: stamps[0], End: stamps[0]}
	for _, ts := range stamps[1:] {
		if ts.Sub(cur.End) >= IdleGap {
			sessions = append(sessions, cur)
			cur = Session{Start: ts, End: ts}
			continue
		}
		cur.End = ts
	}
	return append(sessions, cur)
}

// Segment derives sessions for one user's events. Paired extraction runs
// first; the idle-gap split is used only when pairing yields nothing.
// Empty input yields an empty result, never an error.
func Segment(events []journal.Event) []Session {
	if paired := PairSessions(events); len(paired) > 0 {
		return paired
	}
	return IdleGapSessions(events)
}
