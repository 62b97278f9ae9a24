// Package feature reduces one user's events and tasks to the fixed-order
// numeric vector shared by the rule-based scorer and the learned model.
// The field order is a contract: a model trained against one ordering
// produces silently meaningless output against another, so both sides
// import the schema from here and the model loader verifies it.
package feature

// SchemaVersion identifies the current feature layout. Bump it whenever a
// field is added, removed, renamed, or reordered; trained models record
// the version they were fitted against.
const SchemaVersion = 1

// fieldNames is the canonical feature order. Do not reorder without
// retraining every deployed model.
var fieldNames = []string{
	"completed_tasks",
	"overdue_tasks",
	"streak_days",
	"completion_rate",
	"daily_check_in",
	"session_count",
	"avg_session_minutes",
	"wake_hour",
	"first_action_delay_hours",
}

// Names returns the feature names in canonical order.
func Names() []string {
	out := make([]string, len(fieldNames))
	copy(out, fieldNames)
	return out
}

// Vector is one extraction result. Every field is always populated; the
// extractor substitutes documented defaults when data is missing.
type Vector struct {
	CompletedTasks        int     `json:"completed_tasks"`
	OverdueTasks          int     `json:"overdue_tasks"`
	StreakDays            int     `json:"streak_days"`
	CompletionRate        float64 `json:"completion_rate"`
	DailyCheckIn          int     `json:"daily_check_in"`
	SessionCount          int     `json:"session_count"`
	AvgSessionMinutes     float64 `json:"avg_session_minutes"`
	WakeHour              int     `json:"wake_hour"`
	FirstActionDelayHours float64 `json:"first_action_delay_hours"`
}

// Values returns the vector as scalars in canonical order, the exact shape
// a model's predict input expects.
func (v Vector) Values() []float64 {
	return []float64{
		float64(v.CompletedTasks),
		float64(v.OverdueTasks),
		float64(v.StreakDays),
		v.CompletionRate,
		float64(v.DailyCheckIn),
		float64(v.SessionCount),
		v.AvgSessionMinutes,
		float64(v.WakeHour),
		v.FirstActionDelayHours,
	}
}
