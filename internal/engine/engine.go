// Package engine is the caller-facing surface of the scoring core. It
// wires the session segmenter, feature extractor, rule-based scorer, and
// learned scorer behind one handle so the CLI and HTTP layers never reach
// into the pieces directly.
package engine

import (
	"time"

	"github.com/tendhq/tend/internal/feature"
	"github.com/tendhq/tend/internal/journal"
	"github.com/tendhq/tend/internal/predict"
	"github.com/tendhq/tend/internal/score"
	"github.com/tendhq/tend/internal/segment"
)

// Engine evaluates one user's window of events and tasks. It holds the
// long-lived predictor handle and is safe for concurrent use: every
// evaluation is a pure function of its inputs.
type Engine struct {
	predictor *predict.Predictor
}

// New creates an engine around the given predictor handle. The predictor
// may be model-less; evaluation then carries only the rule-based result.
func New(p *predict.Predictor) *Engine {
	if p == nil {
		p = predict.NewPredictorWithModel(nil)
	}
	return &Engine{predictor: p}
}

// Evaluation is the combined result of one scoring request.
type Evaluation struct {
	Score         score.Score     `json:"score"`
	Features      feature.Vector  `json:"features"`
	Sessions      segment.Metrics `json:"sessions"`
	Predicted     float64         `json:"predicted,omitempty"`
	HasPrediction bool            `json:"has_prediction"`
}

// Evaluate runs both scoring paths over the supplied window. The predicted
// value is reported as the model produced it, unclamped; the rule-based
// score is always present and is the fallback when HasPrediction is false.
func (e *Engine) Evaluate(events []journal.Event, tasks []journal.Task, user journal.User, now time.Time) Evaluation {
	pred, ok, vec := e.predictor.PredictDebug(events, tasks, user)
	return Evaluation{
		Score:         score.Calculate(events, tasks, user, now),
		Features:      vec,
		Sessions:      segment.ComputeMetrics(segment.Segment(events)),
		Predicted:     pred,
		HasPrediction: ok,
	}
}

// Score runs only the rule-based path.
func (e *Engine) Score(events []journal.Event, tasks []journal.Task, user journal.User, now time.Time) score.Score {
	return score.Calculate(events, tasks, user, now)
}

// Features runs only the feature extractor.
func (e *Engine) Features(events []journal.Event, tasks []journal.Task, user journal.User) feature.Vector {
	return feature.Extract(events, tasks, user)
}

// Predict runs only the learned path. The boolean is false when no model
// is loaded.
func (e *Engine) Predict(events []journal.Event, tasks []journal.Task, user journal.User) (float64, bool) {
	return e.predictor.Predict(events, tasks, user)
}

// ModelReady reports whether the learned path has a model behind it.
func (e *Engine) ModelReady() bool {
	return e.predictor.Ready()
}
