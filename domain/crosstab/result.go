package crosstab

import (
	"encoding/json"
	"fmt"
)

// CrosstabResult owns one contingency table, its three percentage views, and
// one statistical summary. It is created once per (row variable, column
// variable) request and never mutated afterwards.
type CrosstabResult struct {
	Table             *ContingencyTable
	RowPercentages    *PercentageView
	ColumnPercentages *PercentageView
	TotalPercentages  *PercentageView
	Statistics        TestResult
}

// PairKey identifies one (row variable, column variable) analysis.
type PairKey string

// NewPairKey renders the fixed "<row> x <col>" key format.
func NewPairKey(rowVar, colVar string) PairKey {
	return PairKey(fmt.Sprintf("%s x %s", rowVar, colVar))
}

// Key returns the result's pair key.
func (r *CrosstabResult) Key() PairKey {
	return NewPairKey(r.Table.RowVariable, r.Table.ColumnVariable)
}

// resultWire fixes the externally visible field names.
type resultWire struct {
	Table             *Grid      `json:"table"`
	RowPercentages    *Grid      `json:"row_percentages"`
	ColumnPercentages *Grid      `json:"column_percentages"`
	TotalPercentages  *Grid      `json:"total_percentages"`
	Statistics        TestResult `json:"statistics"`
}

// MarshalJSON renders the result for collaborators, materializing the "All"
// row/column of every table and view.
func (r *CrosstabResult) MarshalJSON() ([]byte, error) {
	w := resultWire{
		Table:      r.Table.Render(),
		Statistics: r.Statistics,
	}
	if r.RowPercentages != nil {
		w.RowPercentages = r.RowPercentages.Render(r.Table)
	}
	if r.ColumnPercentages != nil {
		w.ColumnPercentages = r.ColumnPercentages.Render(r.Table)
	}
	if r.TotalPercentages != nil {
		w.TotalPercentages = r.TotalPercentages.Render(r.Table)
	}
	return json.Marshal(w)
}
