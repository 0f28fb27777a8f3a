package predict

import (
	"context"
	"fmt"
	"math"
	"slices"

	"heartcheck/ml"
	"heartcheck/patient"
)

const probabilityTolerance = 1e-9

// Adapter wraps a loaded binary classifier. It holds no per-request state.
type Adapter struct {
	model ml.Classifier
}

// NewAdapter accepts only classifiers whose classes are exactly 0 and 1.
func NewAdapter(model ml.Classifier) (*Adapter, error) {
	if model == nil {
		return nil, fmt.Errorf("classifier is required")
	}
	if classes := model.Classes(); !slices.Equal(classes, []int{LabelNoRisk, LabelRisk}) {
		return nil, fmt.Errorf("classifier classes %v, expected [0 1]", classes)
	}
	return &Adapter{model: model}, nil
}

// Predict runs class prediction and class probabilities for rec.
// Classifier errors are returned wrapped and unhandled.
func (a *Adapter) Predict(ctx context.Context, rec patient.Record) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	row := rec.Row()

	label, err := a.model.Predict(row)
	if err != nil {
		return Result{}, fmt.Errorf("predict: %w", err)
	}
	if label != LabelNoRisk && label != LabelRisk {
		return Result{}, fmt.Errorf("predict: unexpected label %d", label)
	}

	proba, err := a.model.PredictProba(row)
	if err != nil {
		return Result{}, fmt.Errorf("predict proba: %w", err)
	}
	if len(proba) != 2 {
		return Result{}, fmt.Errorf("predict proba: expected 2 columns, got %d", len(proba))
	}
	for _, p := range proba {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return Result{}, fmt.Errorf("predict proba: probability %v out of range", p)
		}
	}
	if math.Abs(proba[0]+proba[1]-1) > probabilityTolerance {
		return Result{}, fmt.Errorf("predict proba: probabilities sum to %v", proba[0]+proba[1])
	}

	return Result{
		Label:      label,
		ProbNoRisk: proba[0],
		ProbRisk:   proba[1],
	}, nil
}
