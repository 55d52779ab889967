package engine

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"goxtab/domain/crosstab"
)

// ChiSquare runs the chi-square test of independence on a built table.
//
// Degenerate policy: a table with a single row or column category has no
// independence question to ask, so the test returns statistic 0.0, p-value
// 1.0, zero degrees of freedom, Cramer's V 0.0, the observed body as the
// expected matrix, and an all-zero residual matrix. This keeps dashboards over
// sparse data from tripping on an undefined test.
func ChiSquare(t *crosstab.ContingencyTable) *crosstab.ChiSquareResult {
	rows, cols := t.Shape()
	if rows <= 1 || cols <= 1 {
		return &crosstab.ChiSquareResult{
			Statistic:        0.0,
			PValue:           1.0,
			DegreesOfFreedom: 0,
			CramersV:         0.0,
			Expected:         t.Body(),
			Residuals:        crosstab.ZeroMatrix(rows, cols),
		}
	}

	observed := t.Body()
	expected := crosstab.ExpectedFrequencies(t)

	statistic := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if expected[i][j] > 0 {
				diff := observed[i][j] - expected[i][j]
				statistic += diff * diff / expected[i][j]
			}
		}
	}

	df := (rows - 1) * (cols - 1)
	return &crosstab.ChiSquareResult{
		Statistic:        statistic,
		PValue:           chiSquarePValue(statistic, df),
		DegreesOfFreedom: df,
		CramersV:         cramersV(statistic, t.GrandTotal, rows, cols),
		Expected:         expected,
		Residuals:        crosstab.StandardizedResiduals(observed, expected),
	}
}

// chiSquarePValue is the upper tail of the chi-square distribution.
func chiSquarePValue(statistic float64, degreesOfFreedom int) float64 {
	if degreesOfFreedom <= 0 {
		return 1.0
	}
	chiDist := distuv.ChiSquared{K: float64(degreesOfFreedom)}
	return 1 - chiDist.CDF(statistic)
}

// cramersV = sqrt(chi2 / (n * min(rows-1, cols-1))), 0.0 when the denominator
// would be zero.
func cramersV(statistic float64, n, rows, cols int) float64 {
	minDim := rows - 1
	if cols-1 < minDim {
		minDim = cols - 1
	}
	if n <= 0 || minDim <= 0 {
		return 0.0
	}
	return math.Sqrt(statistic / (float64(n) * float64(minDim)))
}
