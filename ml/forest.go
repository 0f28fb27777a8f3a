package ml

import (
	"errors"
	"fmt"
)

// RandomForest averages the class probabilities of its trees.
type RandomForest struct {
	trees []*DecisionTree
}

func NewRandomForest(trees []*DecisionTree) (*RandomForest, error) {
	if len(trees) == 0 {
		return nil, errors.New("forest has no trees")
	}
	features := trees[0].numFeatures
	classes := trees[0].numClasses
	for i, tree := range trees[1:] {
		if tree.numFeatures != features || tree.numClasses != classes {
			return nil, fmt.Errorf("tree %d shape differs from tree 0", i+1)
		}
	}
	return &RandomForest{trees: trees}, nil
}

func (rf *RandomForest) NumFeatures() int {
	return rf.trees[0].numFeatures
}

func (rf *RandomForest) PredictProba(features []float64) ([]float64, error) {
	var sum []float64
	for i, tree := range rf.trees {
		proba, err := tree.PredictProba(features)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		if sum == nil {
			sum = make([]float64, len(proba))
		}
		for c, p := range proba {
			sum[c] += p
		}
	}
	n := float64(len(rf.trees))
	for c := range sum {
		sum[c] /= n
	}
	return sum, nil
}
