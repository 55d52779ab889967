package crosstab

import "encoding/json"

// TestKind names a statistical test family.
type TestKind string

const (
	TestChiSquare   TestKind = "chi_square"
	TestFisherExact TestKind = "fisher_exact"
	TestTTest       TestKind = "t_test"
	TestAnova       TestKind = "anova"
)

// TestResult is the closed tagged-variant result of a statistical test. Each
// variant carries only the fields its test produces; Summary flattens it into
// the wire form collaborators consume.
type TestResult interface {
	Kind() TestKind
	Summary() Summary
}

// Summary is the externally visible statistics record. Field names are fixed
// for collaborator compatibility.
type Summary struct {
	TestType         string      `json:"test_type"`
	Statistic        float64     `json:"statistic"`
	PValue           float64     `json:"p_value"`
	DegreesOfFreedom any         `json:"degrees_of_freedom,omitempty"`
	EffectSize       *float64    `json:"effect_size,omitempty"`
	ExpectedValues   [][]float64 `json:"expected_values,omitempty"`
	Residuals        [][]float64 `json:"residuals,omitempty"`
}

// marshalSummary emits the flattened wire form for any TestResult.
func marshalSummary(r TestResult) ([]byte, error) {
	return json.Marshal(r.Summary())
}

// ChiSquareResult carries the chi-square test of independence: statistic,
// upper-tail p-value, scalar degrees of freedom, Cramer's V, and the
// expected/residual matrices in the observed table's non-margin shape.
type ChiSquareResult struct {
	Statistic        float64
	PValue           float64
	DegreesOfFreedom int
	CramersV         float64
	Expected         [][]float64
	Residuals        [][]float64
}

func (r *ChiSquareResult) Kind() TestKind { return TestChiSquare }

func (r *ChiSquareResult) Summary() Summary {
	v := r.CramersV
	return Summary{
		TestType:         string(TestChiSquare),
		Statistic:        r.Statistic,
		PValue:           r.PValue,
		DegreesOfFreedom: r.DegreesOfFreedom,
		EffectSize:       &v,
		ExpectedValues:   r.Expected,
		Residuals:        r.Residuals,
	}
}

func (r *ChiSquareResult) MarshalJSON() ([]byte, error) { return marshalSummary(r) }

// FisherExactResult carries the 2x2 exact test: sample odds ratio and exact
// two-sided p-value. No degrees of freedom or effect size.
type FisherExactResult struct {
	OddsRatio float64
	PValue    float64
}

func (r *FisherExactResult) Kind() TestKind { return TestFisherExact }

func (r *FisherExactResult) Summary() Summary {
	return Summary{
		TestType:  string(TestFisherExact),
		Statistic: r.OddsRatio,
		PValue:    r.PValue,
	}
}

func (r *FisherExactResult) MarshalJSON() ([]byte, error) { return marshalSummary(r) }

// TTestResult carries the independent two-sample t-test: pooled-variance
// statistic, two-sided p-value, and the standardized mean-difference effect
// size (m1-m2)/sqrt((v1+v2)/2).
type TTestResult struct {
	Statistic  float64
	PValue     float64
	EffectSize float64
}

func (r *TTestResult) Kind() TestKind { return TestTTest }

func (r *TTestResult) Summary() Summary {
	e := r.EffectSize
	return Summary{
		TestType:   string(TestTTest),
		Statistic:  r.Statistic,
		PValue:     r.PValue,
		EffectSize: &e,
	}
}

func (r *TTestResult) MarshalJSON() ([]byte, error) { return marshalSummary(r) }

// AnovaResult carries the one-way ANOVA: F statistic, p-value, the
// (between-groups, within-groups) degrees-of-freedom pair, and eta-squared.
type AnovaResult struct {
	Statistic  float64
	PValue     float64
	DFBetween  int
	DFWithin   int
	EtaSquared float64
}

func (r *AnovaResult) Kind() TestKind { return TestAnova }

func (r *AnovaResult) Summary() Summary {
	e := r.EtaSquared
	return Summary{
		TestType:         string(TestAnova),
		Statistic:        r.Statistic,
		PValue:           r.PValue,
		DegreesOfFreedom: [2]int{r.DFBetween, r.DFWithin},
		EffectSize:       &e,
	}
}

func (r *AnovaResult) MarshalJSON() ([]byte, error) { return marshalSummary(r) }
