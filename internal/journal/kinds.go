package journal

import "strings"

// Kind identifies what an event records. The set below is closed for
// everything the engine reasons about, but unknown kinds are carried
// through unchanged so new upstream loggers never break comparisons.
type Kind string

// Known event kinds.
const (
	KindDailyCheckIn     Kind = "daily_check_in"
	KindWakeTimeLogged   Kind = "wake_time_logged"
	KindTaskCreated      Kind = "task_created"
	KindTaskStarted      Kind = "task_started"
	KindTaskCompleted    Kind = "task_completed"
	KindTaskSnoozed      Kind = "task_snoozed"
	KindReminderSent     Kind = "reminder_sent"
	KindScreenTransition Kind = "screen_transition"
	KindButtonClicked    Kind = "button_clicked"
)

// knownKinds maps normalized representations to the canonical constant.
var knownKinds = map[string]Kind{
	string(KindDailyCheckIn):     KindDailyCheckIn,
	string(KindWakeTimeLogged):   KindWakeTimeLogged,
	string(KindTaskCreated):      KindTaskCreated,
	string(KindTaskStarted):      KindTaskStarted,
	string(KindTaskCompleted):    KindTaskCompleted,
	string(KindTaskSnoozed):      KindTaskSnoozed,
	string(KindReminderSent):     KindReminderSent,
	string(KindScreenTransition): KindScreenTransition,
	string(KindButtonClicked):    KindButtonClicked,
}

// ParseKind normalizes a raw event-kind string. Known kinds map to their
// canonical constant; anything else is preserved as-is after normalization
// so it round-trips through storage without loss.
func ParseKind(s string) Kind {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "-", "_")
	if k, ok := knownKinds[norm]; ok {
		return k
	}
	return Kind(norm)
}

// Known reports whether the kind is one of the canonical constants.
func (k Kind) Known() bool {
	_, ok := knownKinds[string(k)]
	return ok
}

func (k Kind) String() string { return string(k) }
