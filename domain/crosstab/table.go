package crosstab

// MarginLabel is the name of the synthetic total row and column rendered at the
// presentation boundary.
const MarginLabel = "All"

// ContingencyTable cross-classifies two categorical variables into counts.
// Margins are kept as explicit separate totals, never interleaved with the
// body matrix; Render materializes the "All" row/column for presentation.
type ContingencyTable struct {
	RowVariable    string
	ColumnVariable string

	// Categories in the documented ascending order, fixed at build time.
	RowCategories    []string
	ColumnCategories []string

	// Counts is the non-margin body, rows x cols.
	Counts [][]int

	RowTotals    []int
	ColumnTotals []int
	GrandTotal   int
}

// Shape returns the non-margin dimensions (rows, cols).
func (t *ContingencyTable) Shape() (int, int) {
	return len(t.RowCategories), len(t.ColumnCategories)
}

// Body returns the non-margin counts as a float matrix.
func (t *ContingencyTable) Body() [][]float64 {
	rows, cols := t.Shape()
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			out[i][j] = float64(t.Counts[i][j])
		}
	}
	return out
}

// Validate checks the margin invariants: every total equals the sum of its
// row/column and the grand total equals the sum of all body cells.
func (t *ContingencyTable) Validate() error {
	rows, cols := t.Shape()
	grand := 0
	for i := 0; i < rows; i++ {
		sum := 0
		for j := 0; j < cols; j++ {
			sum += t.Counts[i][j]
		}
		if sum != t.RowTotals[i] {
			return errMarginMismatch(t.RowVariable, t.RowCategories[i], t.RowTotals[i], sum)
		}
		grand += sum
	}
	for j := 0; j < cols; j++ {
		sum := 0
		for i := 0; i < rows; i++ {
			sum += t.Counts[i][j]
		}
		if sum != t.ColumnTotals[j] {
			return errMarginMismatch(t.ColumnVariable, t.ColumnCategories[j], t.ColumnTotals[j], sum)
		}
	}
	if grand != t.GrandTotal {
		return errMarginMismatch(t.RowVariable+"/"+t.ColumnVariable, MarginLabel, t.GrandTotal, grand)
	}
	return nil
}

// Render materializes the table with its "All" row and column appended, the
// shape collaborators consume.
func (t *ContingencyTable) Render() *Grid {
	rows, cols := t.Shape()
	g := &Grid{
		Index:   append(append(make([]string, 0, rows+1), t.RowCategories...), MarginLabel),
		Columns: append(append(make([]string, 0, cols+1), t.ColumnCategories...), MarginLabel),
		Data:    make([][]float64, rows+1),
	}
	for i := 0; i < rows; i++ {
		g.Data[i] = make([]float64, cols+1)
		for j := 0; j < cols; j++ {
			g.Data[i][j] = float64(t.Counts[i][j])
		}
		g.Data[i][cols] = float64(t.RowTotals[i])
	}
	g.Data[rows] = make([]float64, cols+1)
	for j := 0; j < cols; j++ {
		g.Data[rows][j] = float64(t.ColumnTotals[j])
	}
	g.Data[rows][cols] = float64(t.GrandTotal)
	return g
}
