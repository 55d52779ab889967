package engine

import (
	"math"

	"goxtab/domain/core"
	"goxtab/domain/crosstab"
)

// fisherTolerance absorbs floating error when comparing hypergeometric point
// probabilities against the observed one.
const fisherTolerance = 1e-7

// FisherExact runs the exact test of independence on a 2x2 observed table.
// Any other shape is a validation failure. The statistic is the sample odds
// ratio a*d/(b*c); the p-value is the exact two-sided tail: the sum of all
// hypergeometric point probabilities no larger than the observed one.
func FisherExact(t *crosstab.ContingencyTable) (*crosstab.FisherExactResult, error) {
	rows, cols := t.Shape()
	if rows != 2 || cols != 2 {
		return nil, core.NewTableShapeError("a 2x2 table for Fisher exact", rows, cols)
	}

	a := t.Counts[0][0]
	b := t.Counts[0][1]
	c := t.Counts[1][0]
	d := t.Counts[1][1]

	return &crosstab.FisherExactResult{
		OddsRatio: oddsRatio(a, b, c, d),
		PValue:    fisherTwoSidedP(a, b, c, d),
	}, nil
}

func oddsRatio(a, b, c, d int) float64 {
	if b*c == 0 {
		if a*d == 0 {
			return 0.0
		}
		return math.Inf(1)
	}
	return float64(a*d) / float64(b*c)
}

// fisherTwoSidedP sums, over all tables with the observed margins, the point
// probabilities that do not exceed the observed table's probability.
func fisherTwoSidedP(a, b, c, d int) float64 {
	n := a + b + c + d
	if n == 0 {
		return 1.0
	}
	r1 := a + b
	c1 := a + c

	low := 0
	if r1+c1-n > 0 {
		low = r1 + c1 - n
	}
	high := r1
	if c1 < high {
		high = c1
	}

	pObserved := hypergeometricPMF(a, r1, c1, n)
	p := 0.0
	for k := low; k <= high; k++ {
		pk := hypergeometricPMF(k, r1, c1, n)
		if pk <= pObserved*(1+fisherTolerance) {
			p += pk
		}
	}
	if p > 1 {
		p = 1
	}
	return p
}

// hypergeometricPMF is P(X = k) for k successes in a row of r1 draws from a
// population of n with c1 successes, via log-factorials to stay stable for
// large counts.
func hypergeometricPMF(k, r1, c1, n int) float64 {
	return math.Exp(logChoose(r1, k) + logChoose(n-r1, c1-k) - logChoose(n, c1))
}

func logChoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	ln1, _ := math.Lgamma(float64(n + 1))
	lk1, _ := math.Lgamma(float64(k + 1))
	lnk1, _ := math.Lgamma(float64(n - k + 1))
	return ln1 - lk1 - lnk1
}
