package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendhq/tend/internal/journal"
	"github.com/tendhq/tend/internal/plant"
	"github.com/tendhq/tend/internal/score"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testUser(t *testing.T, db *DB) journal.User {
	t.Helper()
	u, err := db.CreateUser(journal.User{Name: "Mika", Email: "mika@example.com", Chronotype: "lark"})
	require.NoError(t, err)
	return u
}

func TestCreateAndGetUser(t *testing.T) {
	db := testDB(t)

	u := testUser(t, db)
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := db.GetUser(u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Mika", got.Name)
	assert.Equal(t, "lark", got.Chronotype)
}

func TestGetUser_NotFound(t *testing.T) {
	db := testDB(t)

	got, err := db.GetUser("nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListUsers(t *testing.T) {
	db := testDB(t)
	testUser(t, db)
	testUser(t, db)

	users, err := db.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestTaskLifecycle(t *testing.T) {
	db := testDB(t)
	u := testUser(t, db)

	created, err := db.CreateTask(journal.Task{UserID: u.ID, Title: "water the plant", Priority: 2, Category: "home"})
	require.NoError(t, err)
	assert.Equal(t, journal.StatusPending, created.Status)

	require.NoError(t, db.CompleteTask(created.ID, time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)))

	tasks, err := db.ListTasks(u.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, journal.StatusCompleted, tasks[0].Status)
	require.NotNil(t, tasks[0].CompletedAt)
	assert.Equal(t, 14, tasks[0].CompletedAt.Hour())
	assert.Equal(t, 2, tasks[0].Priority)
	assert.Equal(t, "home", tasks[0].Category)
}

func TestCompleteTask_Unknown(t *testing.T) {
	db := testDB(t)

	err := db.CompleteTask("missing", time.Now().UTC())
	assert.ErrorContains(t, err, "no task with id")
}

func TestMarkTaskMissed(t *testing.T) {
	db := testDB(t)
	u := testUser(t, db)

	created, err := db.CreateTask(journal.Task{UserID: u.ID, Title: "stretch"})
	require.NoError(t, err)
	require.NoError(t, db.MarkTaskMissed(created.ID, time.Now().UTC()))

	tasks, err := db.ListTasks(u.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, journal.StatusMissed, tasks[0].Status)
}

func TestEventsInWindow(t *testing.T) {
	db := testDB(t)
	u := testUser(t, db)

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	stamps := []time.Time{
		day.Add(-1 * time.Hour), // yesterday, outside
		day.Add(9 * time.Hour),  // inside
		day.Add(23 * time.Hour), // inside
		day.Add(24 * time.Hour), // next midnight, excluded by the half-open bound
	}
	for i, ts := range stamps {
		_, err := db.InsertEvent(journal.Event{
			UserID:    u.ID,
			Kind:      journal.KindButtonClicked,
			Timestamp: ts,
			Payload:   map[string]string{"n": string(rune('a' + i))},
		})
		require.NoError(t, err)
	}

	w, err := WindowFor("today", day.Add(12*time.Hour))
	require.NoError(t, err)

	events, err := db.EventsInWindow(u.ID, w)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.True(t, events[0].Timestamp.Before(events[1].Timestamp), "events must come back timestamp-ascending")
	assert.Equal(t, "b", events[0].Payload["n"], "payload must round-trip")
}

func TestEventsInWindow_SubSecondPrecision(t *testing.T) {
	db := testDB(t)
	u := testUser(t, db)

	// Two events inside the same second. Insert the later one first so
	// the returned order can only come from the stored stamps.
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(300 * time.Millisecond)
	_, err := db.InsertEvent(journal.Event{UserID: u.ID, TaskID: "t1", Kind: journal.KindTaskCompleted, Timestamp: end})
	require.NoError(t, err)
	_, err = db.InsertEvent(journal.Event{UserID: u.ID, TaskID: "t1", Kind: journal.KindTaskStarted, Timestamp: start})
	require.NoError(t, err)

	w, err := WindowFor("today", start)
	require.NoError(t, err)

	events, err := db.EventsInWindow(u.ID, w)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.True(t, events[0].Timestamp.Equal(start), "start must sort first")
	assert.True(t, events[1].Timestamp.Equal(end), "sub-second precision must survive the round trip")
	assert.Equal(t, journal.KindTaskStarted, events[0].Kind)
}

func TestEventsInWindow_AllUnbounded(t *testing.T) {
	db := testDB(t)
	u := testUser(t, db)

	_, err := db.InsertEvent(journal.Event{UserID: u.ID, Kind: journal.KindDailyCheckIn, Timestamp: time.Now().UTC()})
	require.NoError(t, err)

	w, err := WindowFor("all", time.Now().UTC())
	require.NoError(t, err)

	events, err := db.EventsInWindow(u.ID, w)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestWindowFor_Unknown(t *testing.T) {
	_, err := WindowFor("fortnight", time.Now().UTC())
	assert.ErrorContains(t, err, "unknown window")
}

func TestPlantRoundTrip(t *testing.T) {
	db := testDB(t)
	u := testUser(t, db)

	// Never grown: level zero, no error.
	s, err := db.GetPlant(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Level)

	require.NoError(t, db.SavePlant(plant.State{UserID: u.ID, Level: 4, LastUpdated: time.Now().UTC()}))
	require.NoError(t, db.SavePlant(plant.State{UserID: u.ID, Level: 7, LastUpdated: time.Now().UTC()}))

	s, err = db.GetPlant(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, s.Level, "upsert must keep a single row per user")
}

func TestScoreSnapshots(t *testing.T) {
	db := testDB(t)
	u := testUser(t, db)

	latest, err := db.LatestScoreSnapshot(u.ID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	_, err = db.InsertScoreSnapshot(ScoreSnapshot{
		UserID: u.ID,
		Window: "today",
		Score:  score.Score{Focus: 40, Consistency: 50, Energy: 60, Total: 48},
	})
	require.NoError(t, err)

	_, err = db.InsertScoreSnapshot(ScoreSnapshot{
		UserID:        u.ID,
		Window:        "today",
		Score:         score.Score{Focus: 55, Consistency: 60, Energy: 70, Total: 60},
		Predicted:     63.2,
		HasPrediction: true,
	})
	require.NoError(t, err)

	latest, err = db.LatestScoreSnapshot(u.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 60, latest.Score.Total)
	assert.True(t, latest.HasPrediction)
	assert.Equal(t, 63.2, latest.Predicted)
}
