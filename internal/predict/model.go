// Package predict adapts a pre-trained regression model into a second
// scoring path sharing the rule-based scorer's feature space. The model is
// loaded once at startup and read concurrently afterwards; when no usable
// artifact exists, prediction reports absence and callers fall back to the
// rule-based total.
package predict

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tendhq/tend/internal/feature"
)

// Model maps a feature vector in canonical order to a scalar estimate.
type Model interface {
	Predict(values []float64) float64
}

// artifact is the on-disk JSON model format. The training pipeline writes
// it; this package only ever reads it.
type artifact struct {
	SchemaVersion int          `json:"schema_version"`
	Features      []string     `json:"features"`
	Kind          string       `json:"kind"` // "linear" or "forest"
	Intercept     float64      `json:"intercept,omitempty"`
	Coefficients  []float64    `json:"coefficients,omitempty"`
	Trees         [][]treeNode `json:"trees,omitempty"`
}

// treeNode is one node of a regression tree, stored as a flat array.
// Feature == -1 marks a leaf whose Value is the output.
type treeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

// LoadModel reads and validates a model artifact. The artifact's feature
// list must match the live schema name-for-name in order: a mismatch means
// the model was trained against a different layout and its output would be
// a valid-looking but meaningless number.
func LoadModel(path string) (Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing model artifact: %w", err)
	}

	if a.SchemaVersion != feature.SchemaVersion {
		return nil, fmt.Errorf("model schema version %d does not match live version %d", a.SchemaVersion, feature.SchemaVersion)
	}
	if err := checkFeatureOrder(a.Features); err != nil {
		return nil, err
	}

	switch a.Kind {
	case "linear":
		if len(a.Coefficients) != len(a.Features) {
			return nil, fmt.Errorf("linear model has %d coefficients for %d features", len(a.Coefficients), len(a.Features))
		}
		return &linearModel{intercept: a.Intercept, coefficients: a.Coefficients}, nil
	case "forest":
		if len(a.Trees) == 0 {
			return nil, fmt.Errorf("forest model has no trees")
		}
		for i, tree := range a.Trees {
			if err := checkTree(tree, len(a.Features)); err != nil {
				return nil, fmt.Errorf("tree %d: %w", i, err)
			}
		}
		return &forestModel{trees: a.Trees}, nil
	default:
		return nil, fmt.Errorf("unknown model kind %q", a.Kind)
	}
}

// checkFeatureOrder verifies the artifact's feature list against the live
// schema, by name and ordinal position.
func checkFeatureOrder(features []string) error {
	live := feature.Names()
	if len(features) != len(live) {
		return fmt.Errorf("model expects %d features, live schema has %d", len(features), len(live))
	}
	for i, name := range features {
		if name != live[i] {
			return fmt.Errorf("feature %d: model expects %q, live schema has %q", i, name, live[i])
		}
	}
	return nil
}

// checkTree validates node references so prediction can walk the tree
// without bounds checks. Children must link strictly forward in the
// array (flat trees are exported in topological order), which makes a
// walk terminate on any validated artifact.
func checkTree(tree []treeNode, featureCount int) error {
	if len(tree) == 0 {
		return fmt.Errorf("empty tree")
	}
	for i, n := range tree {
		if n.Feature == -1 {
			continue
		}
		if n.Feature < 0 || n.Feature >= featureCount {
			return fmt.Errorf("node %d references feature %d", i, n.Feature)
		}
		if n.Left >= len(tree) || n.Right >= len(tree) {
			return fmt.Errorf("node %d has out-of-range children", i)
		}
		if n.Left <= i || n.Right <= i {
			return fmt.Errorf("node %d does not link forward", i)
		}
	}
	return nil
}

// linearModel is intercept + dot(coefficients, values).
type linearModel struct {
	intercept    float64
	coefficients []float64
}

// Predict assumes a full vector in canonical order; LoadModel pins the
// coefficient count to the live schema, and Vector.Values always
// supplies every field.
func (m *linearModel) Predict(values []float64) float64 {
	out := m.intercept
	for i, c := range m.coefficients {
		out += c * values[i]
	}
	return out
}

// forestModel averages the outputs of its regression trees.
type forestModel struct {
	trees [][]treeNode
}

func (m *forestModel) Predict(values []float64) float64 {
	sum := 0.0
	for _, tree := range m.trees {
		sum += walkTree(tree, values)
	}
	return sum / float64(len(m.trees))
}

func walkTree(tree []treeNode, values []float64) float64 {
	i := 0
	for {
		n := tree[i]
		if n.Feature == -1 {
			return n.Value
		}
		if values[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}
