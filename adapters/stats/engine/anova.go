package engine

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"goxtab/domain/core"
	"goxtab/domain/crosstab"
	"goxtab/domain/dataset"
)

// Anova runs a one-way analysis of variance of measureVar across the groups of
// groupVar. At least two non-empty groups are required. Degrees of freedom are
// the (between-groups, within-groups) pair; the effect size is eta-squared,
// the share of total variance explained by group membership.
func Anova(frame *dataset.Frame, groupVar, measureVar string) (*crosstab.AnovaResult, error) {
	groups, err := extractGroups(frame, groupVar, measureVar)
	if err != nil {
		return nil, err
	}
	if len(groups) < 2 {
		return nil, core.NewGroupCountError(groupVar, "at least 2", len(groups))
	}

	total := 0
	var all []float64
	for _, g := range groups {
		total += len(g.values)
		all = append(all, g.values...)
	}
	grandMean, _ := stats.Mean(all)

	ssBetween := 0.0
	ssWithin := 0.0
	for _, g := range groups {
		groupMean, _ := stats.Mean(g.values)
		diff := groupMean - grandMean
		ssBetween += float64(len(g.values)) * diff * diff
		for _, x := range g.values {
			d := x - groupMean
			ssWithin += d * d
		}
	}

	dfBetween := len(groups) - 1
	dfWithin := total - len(groups)

	statistic, pValue := fStatistic(ssBetween, ssWithin, dfBetween, dfWithin)

	return &crosstab.AnovaResult{
		Statistic:  statistic,
		PValue:     pValue,
		DFBetween:  dfBetween,
		DFWithin:   dfWithin,
		EtaSquared: etaSquared(ssBetween, ssWithin),
	}, nil
}

func fStatistic(ssBetween, ssWithin float64, dfBetween, dfWithin int) (float64, float64) {
	if dfBetween <= 0 || dfWithin <= 0 {
		return 0.0, 1.0
	}
	msBetween := ssBetween / float64(dfBetween)
	msWithin := ssWithin / float64(dfWithin)
	if msWithin == 0 {
		// Constant within groups: any between-group spread is infinitely
		// significant, none at all is no evidence.
		if msBetween > 0 {
			return math.Inf(1), 0.0
		}
		return 0.0, 1.0
	}
	f := msBetween / msWithin
	fDist := distuv.F{D1: float64(dfBetween), D2: float64(dfWithin)}
	return f, 1 - fDist.CDF(f)
}

func etaSquared(ssBetween, ssWithin float64) float64 {
	ssTotal := ssBetween + ssWithin
	if ssTotal == 0 {
		return 0.0
	}
	return ssBetween / ssTotal
}
