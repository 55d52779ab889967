package engine

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"goxtab/domain/core"
	"goxtab/domain/crosstab"
	"goxtab/domain/dataset"
)

// TTest runs an independent two-sample t-test: groupVar must partition the
// frame into exactly two non-empty groups, and the test compares measureVar's
// values between them. The statistic uses the pooled-variance convention; the
// effect size is the standardized mean difference (m1-m2)/sqrt((v1+v2)/2).
func TTest(frame *dataset.Frame, groupVar, measureVar string) (*crosstab.TTestResult, error) {
	groups, err := extractGroups(frame, groupVar, measureVar)
	if err != nil {
		return nil, err
	}
	if len(groups) != 2 {
		return nil, core.NewGroupCountError(groupVar, "exactly 2", len(groups))
	}

	g1, g2 := groups[0].values, groups[1].values
	n1, n2 := float64(len(g1)), float64(len(g2))

	m1, _ := stats.Mean(g1)
	m2, _ := stats.Mean(g2)
	v1 := sampleVariance(g1)
	v2 := sampleVariance(g2)

	df := len(g1) + len(g2) - 2
	statistic := 0.0
	if df > 0 {
		pooled := ((n1-1)*v1 + (n2-1)*v2) / float64(df)
		se := math.Sqrt(pooled * (1/n1 + 1/n2))
		if se > 0 {
			statistic = (m1 - m2) / se
		}
	}

	return &crosstab.TTestResult{
		Statistic:  statistic,
		PValue:     tTestPValue(statistic, df),
		EffectSize: meanDifferenceEffectSize(m1, m2, v1, v2),
	}, nil
}

// tTestPValue is the two-tailed p-value from Student's t-distribution.
func tTestPValue(statistic float64, degreesOfFreedom int) float64 {
	if degreesOfFreedom <= 0 {
		return 1.0
	}
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(degreesOfFreedom)}
	return 2 * (1 - tDist.CDF(math.Abs(statistic)))
}

// sampleVariance is the n-1 variance, 0.0 for groups too small to have one.
func sampleVariance(values []float64) float64 {
	if len(values) < 2 {
		return 0.0
	}
	v, err := stats.SampleVariance(values)
	if err != nil {
		return 0.0
	}
	return v
}

func meanDifferenceEffectSize(m1, m2, v1, v2 float64) float64 {
	denom := math.Sqrt((v1 + v2) / 2)
	if denom == 0 || math.IsNaN(denom) {
		return 0.0
	}
	return (m1 - m2) / denom
}
