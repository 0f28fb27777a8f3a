package patient

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// ValidationError carries one message per rejected field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "invalid patient record: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = msg
	}
}

// FromForm assembles a record from submitted widget values and checks every
// field against its domain.
func FromForm(values url.Values) (Record, error) {
	var rec Record
	verr := &ValidationError{}

	for _, f := range fields {
		raw, ok := values[f.Name]
		if !ok || len(raw) == 0 {
			verr.add(f.Name, "is required")
			continue
		}
		value := strings.TrimSpace(raw[0])
		if err := assign(&rec, f, value); err != nil {
			verr.add(f.Name, err.Error())
		}
	}

	if err := Validate(rec); err != nil {
		if fieldErrs, ok := err.(*ValidationError); ok {
			for name, msg := range fieldErrs.Fields {
				verr.add(name, msg)
			}
		} else {
			return Record{}, err
		}
	}

	if len(verr.Fields) > 0 {
		return Record{}, verr
	}
	return rec, nil
}

func assign(rec *Record, f Field, value string) error {
	switch f.Name {
	case FieldAge:
		return parseInt(value, &rec.Age)
	case FieldRestingBP:
		return parseInt(value, &rec.RestingBP)
	case FieldCholesterol:
		return parseInt(value, &rec.Cholesterol)
	case FieldFastingBS:
		return parseReal(value, &rec.FastingBS)
	case FieldMaxHR:
		return parseReal(value, &rec.MaxHR)
	case FieldOldpeak:
		return parseReal(value, &rec.Oldpeak)
	case FieldSex:
		rec.Sex = Sex(value)
	case FieldChestPainType:
		rec.ChestPainType = ChestPainType(value)
	case FieldRestingECG:
		rec.RestingECG = RestingECG(value)
	case FieldExerciseAngina:
		rec.ExerciseAngina = ExerciseAngina(value)
	case FieldSTSlope:
		rec.STSlope = STSlope(value)
	default:
		return fmt.Errorf("unknown field %q", f.Name)
	}
	return nil
}

func parseInt(value string, dst *int) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("must be a whole number")
	}
	*dst = n
	return nil
}

func parseReal(value string, dst *float64) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("must be a number")
	}
	*dst = v
	return nil
}
