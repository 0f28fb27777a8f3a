package patient

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFieldDefaultsBuildDefaultRecord(t *testing.T) {
	values := url.Values{}
	for _, f := range Fields() {
		values.Set(f.Name, f.Default)
	}
	rec, err := FromForm(values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(Default(), rec); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldsCoverEveryColumn(t *testing.T) {
	got := make(map[string]bool)
	groups := make(map[Group]int)
	for _, f := range Fields() {
		got[f.Name] = true
		groups[f.Group]++
		if f.Kind == KindChoice {
			if len(f.Options) == 0 {
				t.Fatalf("%s has no options", f.Name)
			}
			if f.Options[0] != f.Default {
				t.Fatalf("%s default %q is not the first option", f.Name, f.Default)
			}
		}
		if f.Numeric() && f.Min >= f.Max {
			t.Fatalf("%s has invalid bounds", f.Name)
		}
	}
	for _, name := range ColumnNames() {
		if !got[name] {
			t.Fatalf("missing widget for %s", name)
		}
	}
	if len(got) != 11 {
		t.Fatalf("expected 11 widgets, got %d", len(got))
	}
	if groups[GroupTop] != 1 || groups[GroupLeft] != 5 || groups[GroupRight] != 5 {
		t.Fatalf("unexpected layout: %v", groups)
	}
}

func TestFieldsReturnsCopy(t *testing.T) {
	first := Fields()
	first[1].Options[0] = "mutated"
	f, ok := Lookup(FieldFastingBS)
	if !ok {
		t.Fatal("expected FastingBS field")
	}
	if f.Options[0] != "1.0" {
		t.Fatalf("field metadata mutated: %v", f.Options)
	}
}

func TestRowAndValuesShareColumnNames(t *testing.T) {
	rec := Default()
	row := rec.Row()
	values := rec.Values()
	if len(row) != len(ColumnNames()) || len(values) != len(ColumnNames()) {
		t.Fatalf("expected %d columns, got row %d values %d", len(ColumnNames()), len(row), len(values))
	}
	for _, name := range ColumnNames() {
		if _, ok := row[name]; !ok {
			t.Fatalf("row missing %s", name)
		}
		if _, ok := values[name]; !ok {
			t.Fatalf("values missing %s", name)
		}
	}
}
