package engine

import (
	"reflect"
	"strings"
	"testing"

	"goxtab/domain/core"
	"goxtab/domain/dataset"
)

// seedFrame is the reference dataset: gender x satisfaction over four
// respondents.
func seedFrame(t *testing.T) *dataset.Frame {
	t.Helper()
	frame, err := dataset.NewFrame(
		dataset.Column{Name: "gender", Values: []dataset.Value{
			dataset.Category("Male"), dataset.Category("Female"),
			dataset.Category("Male"), dataset.Category("Female"),
		}},
		dataset.Column{Name: "satisfaction", Values: []dataset.Value{
			dataset.Category("High"), dataset.Category("Medium"),
			dataset.Category("Low"), dataset.Category("High"),
		}},
	)
	if err != nil {
		t.Fatalf("seed frame: %v", err)
	}
	return frame
}

func TestTableBuilder_SeedScenario(t *testing.T) {
	table, err := NewTableBuilder().Build(seedFrame(t), "gender", "satisfaction")
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if !reflect.DeepEqual(table.RowCategories, []string{"Female", "Male"}) {
		t.Errorf("row categories: %v", table.RowCategories)
	}
	if !reflect.DeepEqual(table.ColumnCategories, []string{"High", "Low", "Medium"}) {
		t.Errorf("column categories: %v", table.ColumnCategories)
	}
	wantCounts := [][]int{
		{1, 0, 1}, // Female: High, Low, Medium
		{1, 1, 0}, // Male
	}
	if !reflect.DeepEqual(table.Counts, wantCounts) {
		t.Errorf("counts: %v", table.Counts)
	}
	if !reflect.DeepEqual(table.RowTotals, []int{2, 2}) {
		t.Errorf("row totals: %v", table.RowTotals)
	}
	if !reflect.DeepEqual(table.ColumnTotals, []int{2, 1, 1}) {
		t.Errorf("column totals: %v", table.ColumnTotals)
	}
	if table.GrandTotal != 4 {
		t.Errorf("grand total: %d", table.GrandTotal)
	}
	if err := table.Validate(); err != nil {
		t.Errorf("built table should satisfy the margin invariants: %v", err)
	}
}

func TestTableBuilder_Idempotent(t *testing.T) {
	frame := seedFrame(t)
	b := NewTableBuilder()

	first, err := b.Build(frame, "gender", "satisfaction")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := b.Build(frame, "gender", "satisfaction")
		if err != nil {
			t.Fatalf("rebuild: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatal("repeated builds on the same data should be identical")
		}
	}
}

func TestTableBuilder_SkipsMissingPairs(t *testing.T) {
	frame, err := dataset.NewFrame(
		dataset.Column{Name: "a", Values: []dataset.Value{
			dataset.Category("x"), dataset.Missing(), dataset.Category("y"),
		}},
		dataset.Column{Name: "b", Values: []dataset.Value{
			dataset.Category("p"), dataset.Category("q"), dataset.Missing(),
		}},
	)
	if err != nil {
		t.Fatalf("frame: %v", err)
	}

	table, err := NewTableBuilder().Build(frame, "a", "b")
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	// Only the (x, p) pair is fully observed, but y and q still appear as
	// zero rows/columns because they exist in the distinct-value universe.
	if table.GrandTotal != 1 {
		t.Errorf("grand total should count complete pairs only, got %d", table.GrandTotal)
	}
	if !reflect.DeepEqual(table.RowCategories, []string{"x", "y"}) {
		t.Errorf("row categories should include unpaired values: %v", table.RowCategories)
	}
	if !reflect.DeepEqual(table.ColumnCategories, []string{"p", "q"}) {
		t.Errorf("column categories should include unpaired values: %v", table.ColumnCategories)
	}
}

func TestTableBuilder_UnknownVariable(t *testing.T) {
	_, err := NewTableBuilder().Build(seedFrame(t), "gender", "absent")
	if !core.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "absent") {
		t.Errorf("error should name the variable: %v", err)
	}
}

func TestTableBuilder_AllMissingVariable(t *testing.T) {
	frame, err := dataset.NewFrame(
		dataset.Column{Name: "a", Values: []dataset.Value{dataset.Category("x"), dataset.Category("y")}},
		dataset.Column{Name: "empty", Values: []dataset.Value{dataset.Missing(), dataset.Missing()}},
	)
	if err != nil {
		t.Fatalf("frame: %v", err)
	}

	_, err = NewTableBuilder().Build(frame, "a", "empty")
	if !core.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "empty") {
		t.Errorf("error should name the all-missing variable: %v", err)
	}
}
