package score

import (
	"testing"
	"time"

	"github.com/tendhq/tend/internal/journal"
)

var now = time.Date(2026, 9, 1, 21, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2026, 9, 1, hour, minute, 0, 0, time.UTC)
}

func wakeEvent(hour int) journal.Event {
	stamp := at(hour, 0)
	return journal.Event{
		Kind:      journal.KindWakeTimeLogged,
		Timestamp: stamp,
		Payload:   map[string]string{"time": stamp.Format(time.RFC3339)},
	}
}

func TestCalculate_ConsistencyComponents(t *testing.T) {
	// Three completions saturate the completed term, one check-in takes
	// the full check-in weight, 3/4 completion rate earns 7.5, and with no
	// completion stamped today the streak term stays zero:
	// 40 + 30 + 0 + 7.5 = 77.5, truncated to 77.
	events := []journal.Event{
		{Kind: journal.KindDailyCheckIn, Timestamp: at(8, 0)},
	}
	tasks := []journal.Task{
		{Status: journal.StatusCompleted},
		{Status: journal.StatusCompleted},
		{Status: journal.StatusCompleted},
		{Status: journal.StatusMissed},
	}

	s := Calculate(events, tasks, journal.User{}, now)
	if s.Consistency != 77 {
		t.Fatalf("expected consistency 77, got %d", s.Consistency)
	}
}

func TestCalculate_EmptyInput(t *testing.T) {
	s := Calculate(nil, nil, journal.User{}, now)
	if s.Focus != 0 || s.Consistency != 0 || s.Energy != 0 || s.Total != 0 {
		t.Fatalf("expected all-zero score for empty input, got %+v", s)
	}
}

func TestCalculate_FocusFromPairedSessions(t *testing.T) {
	// One 25-minute paired session: 60*(1/3) + 40*(25/30) = 53.33.
	events := []journal.Event{
		{Kind: journal.KindTaskStarted, TaskID: "t1", Timestamp: at(9, 0)},
		{Kind: journal.KindTaskCompleted, TaskID: "t1", Timestamp: at(9, 25)},
	}

	s := Calculate(events, nil, journal.User{}, now)
	if s.Focus != 53 {
		t.Fatalf("expected focus 53, got %d", s.Focus)
	}
}

func TestCalculate_NoisePenaltyNeverNegative(t *testing.T) {
	// Noise only: the penalty saturates at its cap and can never push
	// focus below zero.
	var events []journal.Event
	for i := 0; i < 100; i++ {
		events = append(events, journal.Event{
			Kind:      journal.KindButtonClicked,
			Timestamp: at(9, 0).Add(time.Duration(i*20) * time.Minute),
		})
	}

	s := Calculate(events, nil, journal.User{}, now)
	if s.Focus < 0 {
		t.Fatalf("focus must never be negative, got %d", s.Focus)
	}
}

func TestCalculate_EnergyWakeBands(t *testing.T) {
	cases := []struct {
		name     string
		wakeHour int
		want     int // 60 * band/100 with no post-wake action
	}{
		{"early wake full marks", 7, 60},
		{"late morning half", 11, 30},
		{"afternoon floor", 14, 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Calculate([]journal.Event{wakeEvent(tc.wakeHour)}, nil, journal.User{}, now)
			if s.Energy != tc.want {
				t.Errorf("expected energy %d, got %d", tc.want, s.Energy)
			}
		})
	}
}

func TestCalculate_EnergyZeroWithoutWakeLog(t *testing.T) {
	events := []journal.Event{
		{Kind: journal.KindTaskCreated, Timestamp: at(10, 0)},
	}
	s := Calculate(events, nil, journal.User{}, now)
	if s.Energy != 0 {
		t.Fatalf("expected energy 0 without a wake log, got %d", s.Energy)
	}
}

func TestCalculate_EnergyActionBands(t *testing.T) {
	cases := []struct {
		name        string
		actionAfter time.Duration
		want        int // 60 (early wake) + 40 * action band/100
	}{
		{"within the hour", 30 * time.Minute, 100},
		{"within three hours", 2 * time.Hour, 80},
		{"later than three hours", 5 * time.Hour, 68},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wake := wakeEvent(7)
			events := []journal.Event{
				wake,
				{Kind: journal.KindTaskCreated, Timestamp: at(7, 0).Add(tc.actionAfter)},
			}
			s := Calculate(events, nil, journal.User{}, now)
			if s.Energy != tc.want {
				t.Errorf("expected energy %d, got %d", tc.want, s.Energy)
			}
		})
	}
}

func TestCalculate_TotalBlend(t *testing.T) {
	// Focus 53.33 from one 25-minute session, consistency 50 from three
	// completions at a perfect rate, energy 0:
	// total = 0.4*53.33 + 0.4*50 = 41.33 -> 41.
	events := []journal.Event{
		{Kind: journal.KindTaskStarted, TaskID: "t1", Timestamp: at(9, 0)},
		{Kind: journal.KindTaskCompleted, TaskID: "t1", Timestamp: at(9, 25)},
	}
	tasks := []journal.Task{
		{Status: journal.StatusCompleted},
		{Status: journal.StatusCompleted},
		{Status: journal.StatusCompleted},
	}

	s := Calculate(events, tasks, journal.User{}, now)
	if s.Total != 41 {
		t.Fatalf("expected total 41, got %d", s.Total)
	}
}

func TestCalculate_Pure(t *testing.T) {
	events := []journal.Event{
		wakeEvent(7),
		{Kind: journal.KindDailyCheckIn, Timestamp: at(8, 0)},
	}
	tasks := []journal.Task{{Status: journal.StatusCompleted}}

	first := Calculate(events, tasks, journal.User{}, now)
	second := Calculate(events, tasks, journal.User{}, now)
	if first != second {
		t.Fatalf("identical inputs produced different scores: %+v vs %+v", first, second)
	}
}
