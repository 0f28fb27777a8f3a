package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
)

const (
	TypeRandomForest = "random_forest"
	TypeDecisionTree = "decision_tree"
)

// Artifact is the on-disk form of a fitted model.
type Artifact struct {
	ModelType string       `json:"model_type"`
	Classes   []int        `json:"classes"`
	Columns   []Column     `json:"columns"`
	Features  []string     `json:"features,omitempty"`
	Trees     [][]TreeNode `json:"trees"`
}

// LoadModel reads the artifact at path. An empty modelType accepts whatever
// the artifact declares.
func LoadModel(modelType, path string) (*Pipeline, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	var artifact Artifact
	if err := json.Unmarshal(payload, &artifact); err != nil {
		return nil, fmt.Errorf("decode model %s: %w", path, err)
	}
	if modelType != "" && artifact.ModelType != modelType {
		return nil, fmt.Errorf("model %s is %q, expected %q", path, artifact.ModelType, modelType)
	}
	pipeline, err := artifact.Build()
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}
	return pipeline, nil
}

// Build validates the artifact and assembles the pipeline it describes.
func (a Artifact) Build() (*Pipeline, error) {
	encoder, err := NewEncoder(a.Columns)
	if err != nil {
		return nil, err
	}
	if len(a.Features) > 0 && !slices.Equal(a.Features, encoder.FeatureNames()) {
		return nil, errors.New("feature names do not match column schema")
	}
	if len(a.Trees) == 0 {
		return nil, errors.New("model has no trees")
	}

	trees := make([]*DecisionTree, len(a.Trees))
	for i, nodes := range a.Trees {
		tree, err := NewDecisionTree(nodes, encoder.Width(), len(a.Classes))
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		trees[i] = tree
	}

	var estimator Estimator
	switch a.ModelType {
	case TypeRandomForest:
		forest, err := NewRandomForest(trees)
		if err != nil {
			return nil, err
		}
		estimator = forest
	case TypeDecisionTree:
		if len(trees) != 1 {
			return nil, fmt.Errorf("decision tree model has %d trees", len(trees))
		}
		estimator = trees[0]
	default:
		return nil, errors.New("unsupported model type")
	}
	return NewPipeline(a.ModelType, a.Classes, encoder, estimator)
}
