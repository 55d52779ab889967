package engine

import (
	"goxtab/domain/core"
	"goxtab/domain/crosstab"
	"goxtab/domain/dataset"
)

// TableBuilder turns two categorical columns of a frame into a contingency
// table with explicit margin totals.
type TableBuilder struct{}

// NewTableBuilder creates a table builder.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{}
}

// Build cross-classifies the non-missing value pairs of rowVar and colVar.
// Both variables must exist and carry at least one non-missing value; the
// returned error names the offending variable otherwise. Categories are the
// distinct non-missing values of each variable in ascending order, so a
// category observed in one variable but never paired still gets a zero
// row/column. Pure function of its inputs.
func (b *TableBuilder) Build(frame *dataset.Frame, rowVar, colVar string) (*crosstab.ContingencyTable, error) {
	rowCol, err := frame.Column(rowVar)
	if err != nil {
		return nil, err
	}
	colCol, err := frame.Column(colVar)
	if err != nil {
		return nil, err
	}
	if rowCol.AllMissing() {
		return nil, core.NewAllMissingError(rowVar)
	}
	if colCol.AllMissing() {
		return nil, core.NewAllMissingError(colVar)
	}

	rowValues := rowCol.DistinctValues()
	colValues := colCol.DistinctValues()

	t := &crosstab.ContingencyTable{
		RowVariable:      rowVar,
		ColumnVariable:   colVar,
		RowCategories:    labels(rowValues),
		ColumnCategories: labels(colValues),
		Counts:           make([][]int, len(rowValues)),
		RowTotals:        make([]int, len(rowValues)),
		ColumnTotals:     make([]int, len(colValues)),
	}
	for i := range t.Counts {
		t.Counts[i] = make([]int, len(colValues))
	}

	rowAt := indexByLabel(t.RowCategories)
	colAt := indexByLabel(t.ColumnCategories)

	for k := 0; k < frame.RowCount(); k++ {
		rv := rowCol.Values[k]
		cv := colCol.Values[k]
		if rv.IsMissing() || cv.IsMissing() {
			continue
		}
		i := rowAt[rv.Label()]
		j := colAt[cv.Label()]
		t.Counts[i][j]++
		t.RowTotals[i]++
		t.ColumnTotals[j]++
		t.GrandTotal++
	}

	return t, nil
}

func labels(values []dataset.Value) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.Label()
	}
	return out
}

func indexByLabel(labels []string) map[string]int {
	at := make(map[string]int, len(labels))
	for i, label := range labels {
		at[label] = i
	}
	return at
}
