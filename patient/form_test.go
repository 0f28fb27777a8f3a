package patient

import (
	"errors"
	"net/url"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func scenarioValues() url.Values {
	return url.Values{
		"Age":            {"40"},
		"Sex":            {"M"},
		"ChestPainType":  {"ASY"},
		"RestingBP":      {"120"},
		"Cholesterol":    {"200"},
		"FastingBS":      {"0.0"},
		"RestingECG":     {"Normal"},
		"MaxHR":          {"150.0"},
		"ExerciseAngina": {"N"},
		"Oldpeak":        {"1.0"},
		"ST_Slope":       {"Flat"},
	}
}

func TestFromFormScenario(t *testing.T) {
	rec, err := FromForm(scenarioValues())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Record{
		Age:            40,
		Sex:            SexMale,
		ChestPainType:  ChestPainAsymptomatic,
		RestingBP:      120,
		Cholesterol:    200,
		FastingBS:      0.0,
		RestingECG:     RestingECGNormal,
		MaxHR:          150.0,
		ExerciseAngina: ExerciseAnginaNo,
		Oldpeak:        1.0,
		STSlope:        STSlopeFlat,
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}

	row := rec.Row()
	if len(row) != 11 {
		t.Fatalf("expected 11 columns, got %d", len(row))
	}
	wantRow := map[string]any{
		"Age":            40.0,
		"Sex":            "M",
		"ChestPainType":  "ASY",
		"RestingBP":      120.0,
		"Cholesterol":    200.0,
		"FastingBS":      0.0,
		"RestingECG":     "Normal",
		"MaxHR":          150.0,
		"ExerciseAngina": "N",
		"Oldpeak":        1.0,
		"ST_Slope":       "Flat",
	}
	if diff := cmp.Diff(wantRow, row); diff != "" {
		t.Fatalf("row mismatch (-want +got):\n%s", diff)
	}
}

func TestFromFormAgeBoundaries(t *testing.T) {
	tests := []struct {
		age   int
		valid bool
	}{
		{0, false},
		{1, true},
		{40, true},
		{120, true},
		{121, false},
	}
	for _, tt := range tests {
		values := scenarioValues()
		values.Set(FieldAge, strconv.Itoa(tt.age))
		rec, err := FromForm(values)
		if tt.valid {
			if err != nil {
				t.Fatalf("age %d: unexpected error: %v", tt.age, err)
			}
			if rec.Age != tt.age {
				t.Fatalf("age %d: got %d", tt.age, rec.Age)
			}
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("age %d: expected validation error, got %v", tt.age, err)
		}
		if _, ok := verr.Fields[FieldAge]; !ok {
			t.Fatalf("age %d: expected Age error, got %v", tt.age, verr.Fields)
		}
	}
}

func TestFromFormRejectsOutOfDomainValues(t *testing.T) {
	tests := []struct {
		field string
		value string
	}{
		{FieldSex, "X"},
		{FieldChestPainType, "asy"},
		{FieldRestingBP, "79"},
		{FieldRestingBP, "201"},
		{FieldCholesterol, "99"},
		{FieldCholesterol, "604"},
		{FieldFastingBS, "0.5"},
		{FieldRestingECG, "Abnormal"},
		{FieldMaxHR, "59.99"},
		{FieldMaxHR, "NaN"},
		{FieldExerciseAngina, "yes"},
		{FieldOldpeak, "-2.61"},
		{FieldOldpeak, "6.21"},
		{FieldOldpeak, "+Inf"},
		{FieldSTSlope, "Steep"},
		{FieldAge, "40.5"},
	}
	for _, tt := range tests {
		values := scenarioValues()
		values.Set(tt.field, tt.value)
		_, err := FromForm(values)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s=%q: expected validation error, got %v", tt.field, tt.value, err)
		}
		if len(verr.Fields) != 1 {
			t.Fatalf("%s=%q: expected one field error, got %v", tt.field, tt.value, verr.Fields)
		}
		if _, ok := verr.Fields[tt.field]; !ok {
			t.Fatalf("%s=%q: error reported on wrong field: %v", tt.field, tt.value, verr.Fields)
		}
	}
}

func TestFromFormMissingField(t *testing.T) {
	values := scenarioValues()
	values.Del(FieldSTSlope)
	_, err := FromForm(values)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Fields[FieldSTSlope] != "is required" {
		t.Fatalf("unexpected message: %v", verr.Fields)
	}
}

func TestFromFormDomainEdges(t *testing.T) {
	values := scenarioValues()
	values.Set(FieldOldpeak, "-2.6")
	values.Set(FieldMaxHR, "202")
	values.Set(FieldCholesterol, "603")
	values.Set(FieldRestingBP, "80")
	rec, err := FromForm(values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Oldpeak != -2.6 || rec.MaxHR != 202 || rec.Cholesterol != 603 || rec.RestingBP != 80 {
		t.Fatalf("values modified: %+v", rec)
	}
}

func TestRecordValuesRoundTrip(t *testing.T) {
	rec := Default()
	back, err := FromForm(rec.Values())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(rec, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
