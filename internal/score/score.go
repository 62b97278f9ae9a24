// Package score computes the deterministic rule-based productivity score.
// Every weight and band below is a fixed design constant, tuned together
// with the model-training pipeline; none of them are configurable.
package score

import (
	"math"
	"time"

	"github.com/tendhq/tend/internal/feature"
	"github.com/tendhq/tend/internal/journal"
	"github.com/tendhq/tend/internal/segment"
)

// Sub-score weights in the blended total.
const (
	totalFocusWeight       = 0.4
	totalConsistencyWeight = 0.4
	totalEnergyWeight      = 0.2
)

// Consistency component weights.
const (
	consistencyCompletedWeight = 40.0
	consistencyCheckInWeight   = 30.0
	consistencyStreakWeight    = 20.0
	consistencyRateWeight      = 10.0

	completedSaturation = 3.0 // completions at which the term maxes out
	streakSaturation    = 7.0 // streak days at which the term maxes out
)

// Focus component weights and the interaction-noise penalty.
const (
	focusSessionCountWeight = 60.0
	focusAvgMinutesWeight   = 40.0

	sessionCountSaturation = 3.0
	avgMinutesSaturation   = 30.0

	noiseSaturation = 50.0
	maxNoisePenalty = 15.0
)

// Energy bands for wake hour and delay-to-first-action.
const (
	earlyWakeEnd  = 9  // waking in [4,9] scores full marks
	earlyWakeFrom = 4
	lateWakeEnd   = 12 // waking in (9,12] scores half

	promptActionHours  = 1.0 // acting within an hour scores full marks
	delayedActionHours = 3.0 // within three hours scores half

	wakeWeight   = 60.0
	actionWeight = 40.0
)

// Score is one user's daily productivity result. All fields are truncated
// to integers in a conceptual 0-100 band.
type Score struct {
	Focus       int `json:"focus"`
	Consistency int `json:"consistency"`
	Energy      int `json:"energy"`
	Total       int `json:"total"`
}

// Calculate derives a score from the supplied window of events and tasks.
// It is a pure function of its inputs: no I/O, no side effects, and never
// an error. Every missing signal has a defined zero or default.
func Calculate(events []journal.Event, tasks []journal.Task, user journal.User, now time.Time) Score {
	focus := focusScore(events)
	consistency := consistencyScore(events, tasks, now)
	energy := energyScore(events)

	total := totalFocusWeight*focus + totalConsistencyWeight*consistency + totalEnergyWeight*energy

	return Score{
		Focus:       int(focus),
		Consistency: int(consistency),
		Energy:      int(energy),
		Total:       int(total),
	}
}

func consistencyScore(events []journal.Event, tasks []journal.Task, now time.Time) float64 {
	completed, overdue := feature.CompletionCounts(tasks)
	rate := feature.CompletionRate(completed, overdue)
	streak := feature.DisplayStreak(tasks, now)

	checkIn := 0.0
	if feature.HasDailyCheckIn(events) {
		checkIn = 1.0
	}

	return consistencyCompletedWeight*math.Min(float64(completed)/completedSaturation, 1) +
		consistencyCheckInWeight*checkIn +
		consistencyStreakWeight*math.Min(float64(streak)/streakSaturation, 1) +
		consistencyRateWeight*rate
}

func focusScore(events []journal.Event) float64 {
	m := segment.ComputeMetrics(segment.Segment(events))

	base := focusSessionCountWeight*math.Min(float64(m.Count)/sessionCountSaturation, 1) +
		focusAvgMinutesWeight*math.Min(m.FilteredAvgMinutes/avgMinutesSaturation, 1)

	noise := float64(feature.NoiseCount(events))
	penalty := math.Min(noise/noiseSaturation, 1) * maxNoisePenalty

	return math.Max(base-penalty, 0)
}

func energyScore(events []journal.Event) float64 {
	wakeScore := 0.0
	actionScore := 0.0

	if wake, ok := feature.WakeTime(events); ok {
		switch hour := wake.Hour(); {
		case hour >= earlyWakeFrom && hour <= earlyWakeEnd:
			wakeScore = 100
		case hour > earlyWakeEnd && hour <= lateWakeEnd:
			wakeScore = 50
		default:
			wakeScore = 20
		}

		if delay, ok := feature.FirstActionDelayHours(events, wake); ok {
			switch {
			case delay <= promptActionHours:
				actionScore = 100
			case delay <= delayedActionHours:
				actionScore = 50
			default:
				actionScore = 20
			}
		}
	}

	return wakeWeight*(wakeScore/100) + actionWeight*(actionScore/100)
}
