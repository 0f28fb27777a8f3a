package ml

import (
	"errors"
	"fmt"
)

// DecisionTree is a fitted binary-split tree stored as a flat pre-order node
// array. Samples go left when feature <= threshold.
type DecisionTree struct {
	nodes       []TreeNode
	numClasses  int
	numFeatures int
}

type TreeNode struct {
	FeatureIdx int       `json:"feature_idx"`
	Threshold  float64   `json:"threshold"`
	LeftChild  int       `json:"left_child"`
	RightChild int       `json:"right_child"`
	IsLeaf     bool      `json:"is_leaf"`
	Value      []float64 `json:"value,omitempty"`
}

// NewDecisionTree checks the node array and returns a tree over numFeatures
// inputs and numClasses outputs. Children must come after their parent, so
// every walk terminates.
func NewDecisionTree(nodes []TreeNode, numFeatures, numClasses int) (*DecisionTree, error) {
	if len(nodes) == 0 {
		return nil, errors.New("tree has no nodes")
	}
	if numClasses < 2 {
		return nil, errors.New("tree needs at least two classes")
	}
	for i, node := range nodes {
		if node.IsLeaf {
			if len(node.Value) != numClasses {
				return nil, fmt.Errorf("leaf %d has %d class weights, want %d", i, len(node.Value), numClasses)
			}
			total := 0.0
			for _, w := range node.Value {
				if w < 0 {
					return nil, fmt.Errorf("leaf %d has negative class weight", i)
				}
				total += w
			}
			if total <= 0 {
				return nil, fmt.Errorf("leaf %d has no class weight", i)
			}
			continue
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= numFeatures {
			return nil, fmt.Errorf("node %d: feature index %d out of range", i, node.FeatureIdx)
		}
		if node.LeftChild <= i || node.LeftChild >= len(nodes) {
			return nil, fmt.Errorf("node %d: invalid left child %d", i, node.LeftChild)
		}
		if node.RightChild <= i || node.RightChild >= len(nodes) {
			return nil, fmt.Errorf("node %d: invalid right child %d", i, node.RightChild)
		}
	}
	return &DecisionTree{
		nodes:       nodes,
		numClasses:  numClasses,
		numFeatures: numFeatures,
	}, nil
}

func (dt *DecisionTree) NumFeatures() int {
	return dt.numFeatures
}

// PredictProba walks the tree and returns the normalized class weights of
// the leaf reached.
func (dt *DecisionTree) PredictProba(features []float64) ([]float64, error) {
	if len(features) != dt.numFeatures {
		return nil, fmt.Errorf("expected %d features, got %d", dt.numFeatures, len(features))
	}
	leaf := dt.nodes[dt.leafIndex(features)]
	total := 0.0
	for _, w := range leaf.Value {
		total += w
	}
	proba := make([]float64, len(leaf.Value))
	for i, w := range leaf.Value {
		proba[i] = w / total
	}
	return proba, nil
}

func (dt *DecisionTree) leafIndex(features []float64) int {
	idx := 0
	for {
		node := dt.nodes[idx]
		if node.IsLeaf {
			return idx
		}
		if features[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
	}
}
