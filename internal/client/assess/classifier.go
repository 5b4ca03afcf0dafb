package assess

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// LinearClassifier is a bundled linear model: one weight row and bias per
// category. It stands in for the app's on-device inference runtime, whose
// format this package deliberately does not depend on.
type LinearClassifier struct {
	weights [][]float32
	bias    []float32
}

type modelFile struct {
	Weights [][]float32 `json:"weights"`
	Bias    []float32   `json:"bias"`
}

// LoadLinearClassifier reads model weights from a JSON file and validates
// their shape against the feature vector and category list.
func LoadLinearClassifier(path string) (*LinearClassifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}

	var m modelFile
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}

	if len(m.Weights) != len(Categories) {
		return nil, fmt.Errorf("model has %d weight rows, expected %d", len(m.Weights), len(Categories))
	}
	if len(m.Bias) != len(Categories) {
		return nil, fmt.Errorf("model has %d bias terms, expected %d", len(m.Bias), len(Categories))
	}
	for i, row := range m.Weights {
		if len(row) != len(FeatureNames) {
			return nil, fmt.Errorf("weight row %d has %d entries, expected %d", i, len(row), len(FeatureNames))
		}
	}

	return &LinearClassifier{weights: m.Weights, bias: m.Bias}, nil
}

// Run scores the feature vector.
func (c *LinearClassifier) Run(_ context.Context, features []float32) ([]float32, error) {
	if len(features) != len(FeatureNames) {
		return nil, fmt.Errorf("expected %d features, got %d", len(FeatureNames), len(features))
	}

	scores := make([]float32, len(c.weights))
	for i, row := range c.weights {
		sum := c.bias[i]
		for j, w := range row {
			sum += w * features[j]
		}
		scores[i] = sum
	}
	return scores, nil
}
