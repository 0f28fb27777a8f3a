package ml

import "errors"

// ErrSchemaMismatch is returned when a row does not match the columns or
// categorical encodings the model was trained with.
var ErrSchemaMismatch = errors.New("row does not match model schema")

// Classifier is a loaded model that scores one named row at a time.
// Implementations are read-only after loading and safe for concurrent use.
type Classifier interface {
	Classes() []int
	Predict(row map[string]any) (int, error)
	PredictProba(row map[string]any) ([]float64, error)
}

// Estimator scores an already encoded feature vector, returning one
// probability per class.
type Estimator interface {
	PredictProba(features []float64) ([]float64, error)
	NumFeatures() int
}
