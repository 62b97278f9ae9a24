package engine

import (
	"testing"
	"time"

	"github.com/tendhq/tend/internal/journal"
	"github.com/tendhq/tend/internal/predict"
)

type constModel struct{ value float64 }

func (m constModel) Predict([]float64) float64 { return m.value }

var now = time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)

func TestEvaluate_WithoutModel(t *testing.T) {
	e := New(nil)

	ev := e.Evaluate(nil, nil, journal.User{}, now)
	if ev.HasPrediction {
		t.Fatal("expected no prediction without a model")
	}
	if ev.Score.Total != 0 {
		t.Errorf("expected zero rule-based total, got %d", ev.Score.Total)
	}
	if e.ModelReady() {
		t.Error("expected ModelReady false")
	}
}

func TestEvaluate_WithModel(t *testing.T) {
	e := New(predict.NewPredictorWithModel(constModel{value: 142.5}))

	ev := e.Evaluate(nil, nil, journal.User{}, now)
	if !ev.HasPrediction {
		t.Fatal("expected a prediction")
	}
	if ev.Predicted != 142.5 {
		t.Errorf("expected the raw model output 142.5, got %f", ev.Predicted)
	}
	if !e.ModelReady() {
		t.Error("expected ModelReady true")
	}
}

func TestEvaluate_CarriesSessionsAndFeatures(t *testing.T) {
	e := New(nil)
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	events := []journal.Event{
		{Kind: journal.KindTaskStarted, TaskID: "t1", Timestamp: start},
		{Kind: journal.KindTaskCompleted, TaskID: "t1", Timestamp: start.Add(30 * time.Minute)},
	}
	tasks := []journal.Task{{Status: journal.StatusCompleted}}

	ev := e.Evaluate(events, tasks, journal.User{}, now)
	if ev.Sessions.Count != 1 {
		t.Errorf("expected 1 session, got %d", ev.Sessions.Count)
	}
	if ev.Features.CompletedTasks != 1 {
		t.Errorf("expected 1 completed task in features, got %d", ev.Features.CompletedTasks)
	}
	if ev.Score.Focus == 0 {
		t.Error("expected a nonzero focus score")
	}
}
