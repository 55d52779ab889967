package dataset

import (
	"strings"
	"testing"

	"goxtab/domain/core"
)

func TestDistinctValues_LexicographicOrdering(t *testing.T) {
	col := Column{Name: "satisfaction", Values: []Value{
		Category("Medium"), Category("High"), Missing(), Category("Low"), Category("High"),
	}}

	got := col.DistinctValues()
	want := []string{"High", "Low", "Medium"}
	if len(got) != len(want) {
		t.Fatalf("expected %d distinct values, got %d", len(want), len(got))
	}
	for i, v := range got {
		if v.Label() != want[i] {
			t.Errorf("position %d: want %q, got %q", i, want[i], v.Label())
		}
	}
}

func TestDistinctValues_NumericOrdering(t *testing.T) {
	col := Column{Name: "rating", Values: []Value{
		Number(10), Number(2), Number(2), Missing(), Number(-1),
	}}

	got := col.DistinctValues()
	want := []string{"-1", "2", "10"}
	if len(got) != len(want) {
		t.Fatalf("expected %d distinct values, got %d", len(want), len(got))
	}
	for i, v := range got {
		if v.Label() != want[i] {
			t.Errorf("position %d: want %q, got %q", i, want[i], v.Label())
		}
	}
}

func TestDistinctValues_StableAcrossCalls(t *testing.T) {
	col := Column{Name: "region", Values: []Value{
		Category("West"), Category("East"), Category("North"), Category("East"),
	}}

	first := col.DistinctValues()
	for run := 0; run < 10; run++ {
		again := col.DistinctValues()
		for i := range first {
			if first[i].Label() != again[i].Label() {
				t.Fatalf("run %d: ordering changed at %d: %q vs %q", run, i, first[i].Label(), again[i].Label())
			}
		}
	}
}

func TestColumn_AllMissing(t *testing.T) {
	missing := Column{Name: "empty", Values: []Value{Missing(), Missing()}}
	if !missing.AllMissing() {
		t.Error("column of missing markers should report AllMissing")
	}

	mixed := Column{Name: "mixed", Values: []Value{Missing(), Category("x")}}
	if mixed.AllMissing() {
		t.Error("column with one real value should not report AllMissing")
	}
}

func TestNewFrame_RejectsRaggedColumns(t *testing.T) {
	_, err := NewFrame(
		Column{Name: "a", Values: []Value{Number(1), Number(2)}},
		Column{Name: "b", Values: []Value{Number(1)}},
	)
	if !core.IsValidationError(err) {
		t.Fatalf("expected validation error for ragged columns, got %v", err)
	}
}

func TestFrame_ColumnLookup(t *testing.T) {
	f, err := NewFrame(Column{Name: "a", Values: []Value{Number(1)}})
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}

	if _, err := f.Column("a"); err != nil {
		t.Errorf("existing column: %v", err)
	}

	_, err = f.Column("nope")
	if !core.IsValidationError(err) {
		t.Fatalf("expected validation error for unknown column, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "nope") {
		t.Errorf("error should name the offending variable: %v", err)
	}
}
