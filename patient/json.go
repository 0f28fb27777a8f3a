package patient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// FromJSON decodes a record keyed by column name. Every column must be
// present and non-null, and nothing else may be present. Values are then
// checked like form input. Malformed JSON is returned as a plain error,
// field problems as a *ValidationError.
func FromJSON(data []byte) (Record, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Record{}, fmt.Errorf("decode patient record: %w", err)
	}

	verr := &ValidationError{}
	for _, f := range fields {
		value, ok := raw[f.Name]
		if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			verr.add(f.Name, "is required")
		}
	}
	for name := range raw {
		if _, ok := Lookup(name); !ok {
			verr.add(name, "is not a patient field")
		}
	}
	if len(verr.Fields) > 0 {
		return Record{}, verr
	}

	var rec Record
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rec); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			verr.add(typeErr.Field, "has the wrong type, want "+typeErr.Type.String())
			return Record{}, verr
		}
		return Record{}, fmt.Errorf("decode patient record: %w", err)
	}

	if err := Validate(rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}
