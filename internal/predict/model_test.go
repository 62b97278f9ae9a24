package predict

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendhq/tend/internal/feature"
)

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func featureList() string {
	return `["` + strings.Join(feature.Names(), `","`) + `"]`
}

func TestLoadModel_Linear(t *testing.T) {
	path := writeArtifact(t, `{
		"schema_version": 1,
		"features": `+featureList()+`,
		"kind": "linear",
		"intercept": 10,
		"coefficients": [5, 0, 0, 0, 0, 0, 0, 0, 0]
	}`)

	m, err := LoadModel(path)
	require.NoError(t, err)

	// intercept + 5 * completed_tasks
	values := feature.Vector{CompletedTasks: 3}.Values()
	assert.Equal(t, 25.0, m.Predict(values))
}

func TestLoadModel_Forest(t *testing.T) {
	// A single stump: completed_tasks <= 1 -> 20, otherwise 80.
	path := writeArtifact(t, `{
		"schema_version": 1,
		"features": `+featureList()+`,
		"kind": "forest",
		"trees": [[
			{"feature": 0, "threshold": 1, "left": 1, "right": 2},
			{"feature": -1, "value": 20},
			{"feature": -1, "value": 80}
		]]
	}`)

	m, err := LoadModel(path)
	require.NoError(t, err)

	assert.Equal(t, 20.0, m.Predict(feature.Vector{CompletedTasks: 1}.Values()))
	assert.Equal(t, 80.0, m.Predict(feature.Vector{CompletedTasks: 4}.Values()))
}

func TestLoadModel_MissingFile(t *testing.T) {
	_, err := LoadModel(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadModel_MalformedJSON(t *testing.T) {
	path := writeArtifact(t, `{not json`)
	_, err := LoadModel(path)
	assert.ErrorContains(t, err, "parsing model artifact")
}

func TestLoadModel_SchemaVersionMismatch(t *testing.T) {
	path := writeArtifact(t, `{
		"schema_version": 99,
		"features": `+featureList()+`,
		"kind": "linear",
		"coefficients": [0, 0, 0, 0, 0, 0, 0, 0, 0]
	}`)
	_, err := LoadModel(path)
	assert.ErrorContains(t, err, "schema version")
}

func TestLoadModel_FeatureOrderMismatch(t *testing.T) {
	names := feature.Names()
	names[0], names[1] = names[1], names[0]
	path := writeArtifact(t, `{
		"schema_version": 1,
		"features": ["`+strings.Join(names, `","`)+`"],
		"kind": "linear",
		"coefficients": [0, 0, 0, 0, 0, 0, 0, 0, 0]
	}`)
	_, err := LoadModel(path)
	assert.ErrorContains(t, err, "feature 0")
}

func TestLoadModel_FeatureCountMismatch(t *testing.T) {
	path := writeArtifact(t, `{
		"schema_version": 1,
		"features": ["completed_tasks"],
		"kind": "linear",
		"coefficients": [1]
	}`)
	_, err := LoadModel(path)
	assert.ErrorContains(t, err, "live schema has")
}

func TestLoadModel_CoefficientCountMismatch(t *testing.T) {
	path := writeArtifact(t, `{
		"schema_version": 1,
		"features": `+featureList()+`,
		"kind": "linear",
		"coefficients": [1, 2]
	}`)
	_, err := LoadModel(path)
	assert.ErrorContains(t, err, "coefficients")
}

func TestLoadModel_UnknownKind(t *testing.T) {
	path := writeArtifact(t, `{
		"schema_version": 1,
		"features": `+featureList()+`,
		"kind": "svm"
	}`)
	_, err := LoadModel(path)
	assert.ErrorContains(t, err, "unknown model kind")
}

func TestLoadModel_BackLinkingTreeRejected(t *testing.T) {
	// A child pointing at an ancestor would make prediction loop forever;
	// the artifact must be rejected at load time.
	cases := []struct {
		name string
		tree string
	}{
		{
			"link to root",
			`[{"feature": 0, "threshold": 100, "left": 0, "right": 1},
			  {"feature": -1, "value": 50}]`,
		},
		{
			"self link",
			`[{"feature": 0, "threshold": 1, "left": 1, "right": 2},
			  {"feature": 1, "threshold": 1, "left": 1, "right": 2},
			  {"feature": -1, "value": 30}]`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeArtifact(t, `{
				"schema_version": 1,
				"features": `+featureList()+`,
				"kind": "forest",
				"trees": [`+tc.tree+`]
			}`)
			_, err := LoadModel(path)
			assert.ErrorContains(t, err, "link forward")
		})
	}
}

func TestLoadModel_InvalidTreeReference(t *testing.T) {
	path := writeArtifact(t, `{
		"schema_version": 1,
		"features": `+featureList()+`,
		"kind": "forest",
		"trees": [[
			{"feature": 0, "threshold": 1, "left": 5, "right": 6}
		]]
	}`)
	_, err := LoadModel(path)
	assert.ErrorContains(t, err, "out-of-range children")
}
