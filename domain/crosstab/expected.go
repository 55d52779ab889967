package crosstab

import "math"

// ExpectedFrequencies computes the independence-assumption expected-count
// matrix from the table margins: cell (i,j) = rowTotal(i) * colTotal(j) / n.
// A zero grand total yields an all-zero matrix instead of dividing by zero.
func ExpectedFrequencies(t *ContingencyTable) [][]float64 {
	rows, cols := t.Shape()
	expected := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		expected[i] = make([]float64, cols)
		if t.GrandTotal == 0 {
			continue
		}
		for j := 0; j < cols; j++ {
			expected[i][j] = float64(t.RowTotals[i]) * float64(t.ColumnTotals[j]) / float64(t.GrandTotal)
		}
	}
	return expected
}

// StandardizedResiduals computes (observed - expected) / sqrt(expected) over
// two matrices of identical shape. Cells with zero expected count produce 0.0
// rather than a division-by-zero value.
func StandardizedResiduals(observed, expected [][]float64) [][]float64 {
	residuals := make([][]float64, len(observed))
	for i := range observed {
		residuals[i] = make([]float64, len(observed[i]))
		for j := range observed[i] {
			if expected[i][j] == 0 {
				continue
			}
			residuals[i][j] = (observed[i][j] - expected[i][j]) / math.Sqrt(expected[i][j])
		}
	}
	return residuals
}

// ZeroMatrix returns an all-zero matrix of the given shape.
func ZeroMatrix(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}
