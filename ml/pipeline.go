package ml

import (
	"errors"
	"fmt"
)

// Pipeline chains the column encoder and a fitted estimator. It implements
// Classifier.
type Pipeline struct {
	modelType string
	classes   []int
	encoder   *Encoder
	estimator Estimator
}

func NewPipeline(modelType string, classes []int, encoder *Encoder, estimator Estimator) (*Pipeline, error) {
	if encoder == nil || estimator == nil {
		return nil, errors.New("encoder and estimator are required")
	}
	if len(classes) < 2 {
		return nil, errors.New("at least two classes are required")
	}
	if encoder.Width() != estimator.NumFeatures() {
		return nil, fmt.Errorf("encoder produces %d features, estimator expects %d", encoder.Width(), estimator.NumFeatures())
	}
	return &Pipeline{
		modelType: modelType,
		classes:   append([]int(nil), classes...),
		encoder:   encoder,
		estimator: estimator,
	}, nil
}

func (p *Pipeline) Type() string {
	return p.modelType
}

func (p *Pipeline) Classes() []int {
	return append([]int(nil), p.classes...)
}

func (p *Pipeline) Encoder() *Encoder {
	return p.encoder
}

// PredictProba returns one probability per class, in Classes order.
func (p *Pipeline) PredictProba(row map[string]any) ([]float64, error) {
	features, err := p.encoder.Encode(row)
	if err != nil {
		return nil, err
	}
	proba, err := p.estimator.PredictProba(features)
	if err != nil {
		return nil, err
	}
	if len(proba) != len(p.classes) {
		return nil, fmt.Errorf("estimator returned %d probabilities for %d classes", len(proba), len(p.classes))
	}
	return proba, nil
}

// Predict returns the class with the highest probability; ties go to the
// earlier class.
func (p *Pipeline) Predict(row map[string]any) (int, error) {
	proba, err := p.PredictProba(row)
	if err != nil {
		return 0, err
	}
	best := 0
	for i := 1; i < len(proba); i++ {
		if proba[i] > proba[best] {
			best = i
		}
	}
	return p.classes[best], nil
}
