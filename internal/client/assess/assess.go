package assess

import (
	"context"
	"fmt"
)

// FeatureNames is the ordered feature vector the classifier expects.
var FeatureNames = []string{
	"phone_score",
	"sleep_score",
	"leisure_score",
	"social_score",
	"me_score",
}

// Categories are the classifier output labels, indexed by output position.
var Categories = []string{"Normal", "Mild", "Moderate", "Severe"}

// Classifier scores a fixed-length feature vector, one score per category.
// The on-device model runtime sits behind this boundary.
type Classifier interface {
	Run(ctx context.Context, features []float32) ([]float32, error)
}

// Result is one classified assessment.
type Result struct {
	Category string
	Index    int
	Scores   []float32
}

// Evaluate runs the feature vector through the classifier and selects the
// highest-scoring category. Ties resolve to the lowest index.
func Evaluate(ctx context.Context, clf Classifier, features []float32) (*Result, error) {
	if clf == nil {
		return nil, fmt.Errorf("no classifier configured")
	}
	if len(features) != len(FeatureNames) {
		return nil, fmt.Errorf("expected %d features, got %d", len(FeatureNames), len(features))
	}

	scores, err := clf.Run(ctx, features)
	if err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}
	if len(scores) == 0 {
		return nil, fmt.Errorf("classifier returned no scores")
	}

	maxIdx := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[maxIdx] {
			maxIdx = i
		}
	}

	category := fmt.Sprintf("Class %d", maxIdx)
	if maxIdx < len(Categories) {
		category = Categories[maxIdx]
	}

	return &Result{Category: category, Index: maxIdx, Scores: scores}, nil
}
