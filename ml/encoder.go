package ml

import (
	"errors"
	"fmt"
)

type ColumnKind string

const (
	ColumnNumeric     ColumnKind = "numeric"
	ColumnCategorical ColumnKind = "categorical"
)

// Column is one input column as seen at training time.
type Column struct {
	Name       string     `json:"name"`
	Kind       ColumnKind `json:"kind"`
	Categories []string   `json:"categories,omitempty"`
}

// Encoder turns a named row into the feature vector the trees split on.
// Numeric columns pass through; categorical columns expand to one indicator
// per category, in category order.
type Encoder struct {
	columns []Column
	index   []map[string]int
	width   int
}

func NewEncoder(columns []Column) (*Encoder, error) {
	if len(columns) == 0 {
		return nil, errors.New("schema has no columns")
	}
	enc := &Encoder{
		columns: columns,
		index:   make([]map[string]int, len(columns)),
	}
	seen := make(map[string]bool, len(columns))
	for i, col := range columns {
		if col.Name == "" {
			return nil, fmt.Errorf("column %d has no name", i)
		}
		if seen[col.Name] {
			return nil, fmt.Errorf("duplicate column %q", col.Name)
		}
		seen[col.Name] = true

		switch col.Kind {
		case ColumnNumeric:
			enc.width++
		case ColumnCategorical:
			if len(col.Categories) == 0 {
				return nil, fmt.Errorf("categorical column %q has no categories", col.Name)
			}
			lookup := make(map[string]int, len(col.Categories))
			for j, category := range col.Categories {
				if _, dup := lookup[category]; dup {
					return nil, fmt.Errorf("column %q: duplicate category %q", col.Name, category)
				}
				lookup[category] = j
			}
			enc.index[i] = lookup
			enc.width += len(col.Categories)
		default:
			return nil, fmt.Errorf("column %q: unknown kind %q", col.Name, col.Kind)
		}
	}
	return enc, nil
}

// Width is the length of an encoded vector.
func (e *Encoder) Width() int {
	return e.width
}

func (e *Encoder) Columns() []Column {
	return append([]Column(nil), e.columns...)
}

// FeatureNames names every slot of an encoded vector, e.g. "Sex_M" for a
// one-hot slot.
func (e *Encoder) FeatureNames() []string {
	names := make([]string, 0, e.width)
	for _, col := range e.columns {
		if col.Kind == ColumnNumeric {
			names = append(names, col.Name)
			continue
		}
		for _, category := range col.Categories {
			names = append(names, col.Name+"_"+category)
		}
	}
	return names
}

// Encode fails with ErrSchemaMismatch when a column is missing, has the wrong
// type, or carries a category unseen at training time.
func (e *Encoder) Encode(row map[string]any) ([]float64, error) {
	vector := make([]float64, 0, e.width)
	for i, col := range e.columns {
		raw, ok := row[col.Name]
		if !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrSchemaMismatch, col.Name)
		}
		if col.Kind == ColumnNumeric {
			v, ok := toFloat(raw)
			if !ok {
				return nil, fmt.Errorf("%w: column %q expects a number, got %T", ErrSchemaMismatch, col.Name, raw)
			}
			vector = append(vector, v)
			continue
		}

		category, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: column %q expects a category, got %T", ErrSchemaMismatch, col.Name, raw)
		}
		pos, known := e.index[i][category]
		if !known {
			return nil, fmt.Errorf("%w: column %q: unknown category %q", ErrSchemaMismatch, col.Name, category)
		}
		for j := range col.Categories {
			if j == pos {
				vector = append(vector, 1)
			} else {
				vector = append(vector, 0)
			}
		}
	}
	return vector, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
