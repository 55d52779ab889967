package crosstab

// ViewKind selects the divisor family of a percentage view.
type ViewKind string

const (
	ViewRow    ViewKind = "row"
	ViewColumn ViewKind = "column"
	ViewTotal  ViewKind = "total"
)

// PercentageView is a percentage breakdown of a ContingencyTable. Like the
// table itself it keeps margins separate: Cells is the non-margin body,
// RowMargin is the "All" column, ColumnMargin the "All" row, Grand the
// "All"/"All" cell.
type PercentageView struct {
	Kind         ViewKind
	Cells        [][]float64
	RowMargin    []float64
	ColumnMargin []float64
	Grand        float64
}

// RowView derives the row-wise percentage view: each non-margin row divided by
// its row total. A zero-total row becomes all zeros, margin included, rather
// than failing; the "All" row is divided by the grand total.
func RowView(t *ContingencyTable) *PercentageView {
	rows, cols := t.Shape()
	v := &PercentageView{
		Kind:         ViewRow,
		Cells:        make([][]float64, rows),
		RowMargin:    make([]float64, rows),
		ColumnMargin: make([]float64, cols),
	}
	for i := 0; i < rows; i++ {
		v.Cells[i] = make([]float64, cols)
		total := t.RowTotals[i]
		if total == 0 {
			continue
		}
		for j := 0; j < cols; j++ {
			v.Cells[i][j] = float64(t.Counts[i][j]) / float64(total) * 100
		}
		v.RowMargin[i] = 100.0
	}
	if t.GrandTotal > 0 {
		for j := 0; j < cols; j++ {
			v.ColumnMargin[j] = float64(t.ColumnTotals[j]) / float64(t.GrandTotal) * 100
		}
		v.Grand = 100.0
	}
	return v
}

// ColumnView derives the column-wise percentage view, symmetric to RowView.
func ColumnView(t *ContingencyTable) *PercentageView {
	rows, cols := t.Shape()
	v := &PercentageView{
		Kind:         ViewColumn,
		Cells:        make([][]float64, rows),
		RowMargin:    make([]float64, rows),
		ColumnMargin: make([]float64, cols),
	}
	for i := 0; i < rows; i++ {
		v.Cells[i] = make([]float64, cols)
	}
	for j := 0; j < cols; j++ {
		total := t.ColumnTotals[j]
		if total == 0 {
			continue
		}
		for i := 0; i < rows; i++ {
			v.Cells[i][j] = float64(t.Counts[i][j]) / float64(total) * 100
		}
		v.ColumnMargin[j] = 100.0
	}
	if t.GrandTotal > 0 {
		for i := 0; i < rows; i++ {
			v.RowMargin[i] = float64(t.RowTotals[i]) / float64(t.GrandTotal) * 100
		}
		v.Grand = 100.0
	}
	return v
}

// TotalView derives the grand-total percentage view: every cell, margins
// included, as a share of the grand total.
func TotalView(t *ContingencyTable) *PercentageView {
	rows, cols := t.Shape()
	v := &PercentageView{
		Kind:         ViewTotal,
		Cells:        make([][]float64, rows),
		RowMargin:    make([]float64, rows),
		ColumnMargin: make([]float64, cols),
	}
	for i := 0; i < rows; i++ {
		v.Cells[i] = make([]float64, cols)
	}
	if t.GrandTotal == 0 {
		return v
	}
	grand := float64(t.GrandTotal)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v.Cells[i][j] = float64(t.Counts[i][j]) / grand * 100
		}
		v.RowMargin[i] = float64(t.RowTotals[i]) / grand * 100
	}
	for j := 0; j < cols; j++ {
		v.ColumnMargin[j] = float64(t.ColumnTotals[j]) / grand * 100
	}
	v.Grand = 100.0
	return v
}

// Render materializes the view with its "All" row and column appended, using
// the category labels of the table it was derived from.
func (v *PercentageView) Render(t *ContingencyTable) *Grid {
	rows, cols := t.Shape()
	g := &Grid{
		Index:   append(append(make([]string, 0, rows+1), t.RowCategories...), MarginLabel),
		Columns: append(append(make([]string, 0, cols+1), t.ColumnCategories...), MarginLabel),
		Data:    make([][]float64, rows+1),
	}
	for i := 0; i < rows; i++ {
		g.Data[i] = make([]float64, cols+1)
		copy(g.Data[i], v.Cells[i])
		g.Data[i][cols] = v.RowMargin[i]
	}
	g.Data[rows] = make([]float64, cols+1)
	copy(g.Data[rows], v.ColumnMargin)
	g.Data[rows][cols] = v.Grand
	return g
}
