package predict

import (
	"log"

	"github.com/tendhq/tend/internal/feature"
	"github.com/tendhq/tend/internal/journal"
)

// Predictor owns the process-wide model handle. Construct it once at
// startup and pass it into every scoring path; after construction it is
// read-only and safe for concurrent use.
type Predictor struct {
	model Model
}

// NewPredictor loads the model artifact at path. A missing, malformed, or
// schema-incompatible artifact is logged and leaves the predictor
// model-less: prediction then reports absence rather than failing, and
// callers use the rule-based total instead.
func NewPredictor(path string) *Predictor {
	model, err := LoadModel(path)
	if err != nil {
		log.Printf("predict: model unavailable at %s: %v (falling back to rule-based scoring)", path, err)
		return &Predictor{}
	}
	log.Printf("predict: model loaded from %s", path)
	return &Predictor{model: model}
}

// NewPredictorWithModel wraps an already-constructed model. Tests use this
// to inject stubs; a nil model yields a predictor that always reports
// absence.
func NewPredictorWithModel(m Model) *Predictor {
	return &Predictor{model: m}
}

// Ready reports whether a model is loaded.
func (p *Predictor) Ready() bool {
	return p.model != nil
}

// Predict estimates the total score for the supplied window. The second
// return value is false when no model is loaded. The estimate is returned
// as the model produced it: no clamping to the 0-100 band is applied, so
// callers needing an integer score must round and bound explicitly.
func (p *Predictor) Predict(events []journal.Event, tasks []journal.Task, user journal.User) (float64, bool) {
	pred, ok, _ := p.PredictDebug(events, tasks, user)
	return pred, ok
}

// PredictDebug is Predict plus the feature vector that was (or would have
// been) fed to the model, for inspection endpoints and tests.
func (p *Predictor) PredictDebug(events []journal.Event, tasks []journal.Task, user journal.User) (float64, bool, feature.Vector) {
	vec := feature.Extract(events, tasks, user)
	if p.model == nil {
		return 0, false, vec
	}
	return p.model.Predict(vec.Values()), true, vec
}
