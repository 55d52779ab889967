package engine

import (
	"math"
	"testing"

	"goxtab/domain/core"
	"goxtab/domain/dataset"
)

func groupedFrame(t *testing.T, groups []string, values []float64) *dataset.Frame {
	t.Helper()
	g := make([]dataset.Value, len(groups))
	v := make([]dataset.Value, len(values))
	for i := range groups {
		g[i] = dataset.Category(groups[i])
		v[i] = dataset.Number(values[i])
	}
	frame, err := dataset.NewFrame(
		dataset.Column{Name: "group", Values: g},
		dataset.Column{Name: "score", Values: v},
	)
	if err != nil {
		t.Fatalf("frame: %v", err)
	}
	return frame
}

func TestTTest_KnownGroups(t *testing.T) {
	frame := groupedFrame(t,
		[]string{"A", "A", "A", "B", "B", "B"},
		[]float64{1, 2, 3, 2, 4, 6},
	)

	r, err := TTest(frame, "group", "score")
	if err != nil {
		t.Fatalf("t-test: %v", err)
	}

	// Pooled t = (2-4)/sqrt(2.5*(1/3+1/3)) = -1.5491933...
	wantT := -2.0 / math.Sqrt(5.0/3.0)
	if math.Abs(r.Statistic-wantT) > 1e-9 {
		t.Errorf("statistic: want %v, got %v", wantT, r.Statistic)
	}
	if r.PValue <= 0 || r.PValue >= 1 {
		t.Errorf("p-value should be strictly inside (0,1), got %v", r.PValue)
	}
	// Effect size uses the (v1+v2)/2 convention: -2/sqrt(2.5).
	wantD := -2.0 / math.Sqrt(2.5)
	if math.Abs(r.EffectSize-wantD) > 1e-9 {
		t.Errorf("effect size: want %v, got %v", wantD, r.EffectSize)
	}
}

func TestTTest_GroupOrderIsFirstAppearance(t *testing.T) {
	forward := groupedFrame(t,
		[]string{"A", "A", "B", "B"},
		[]float64{1, 2, 5, 6},
	)
	reversed := groupedFrame(t,
		[]string{"B", "B", "A", "A"},
		[]float64{5, 6, 1, 2},
	)

	rf, err := TTest(forward, "group", "score")
	if err != nil {
		t.Fatalf("t-test: %v", err)
	}
	rr, err := TTest(reversed, "group", "score")
	if err != nil {
		t.Fatalf("t-test: %v", err)
	}
	if math.Abs(rf.Statistic+rr.Statistic) > 1e-9 {
		t.Errorf("swapping group appearance order should flip the sign: %v vs %v", rf.Statistic, rr.Statistic)
	}
	if math.Abs(rf.PValue-rr.PValue) > 1e-9 {
		t.Errorf("p-value should not depend on group order: %v vs %v", rf.PValue, rr.PValue)
	}
}

func TestTTest_RequiresExactlyTwoGroups(t *testing.T) {
	three := groupedFrame(t,
		[]string{"A", "B", "C"},
		[]float64{1, 2, 3},
	)
	_, err := TTest(three, "group", "score")
	if !core.IsValidationError(err) {
		t.Fatalf("three groups should fail validation, got %v", err)
	}

	one := groupedFrame(t,
		[]string{"A", "A"},
		[]float64{1, 2},
	)
	_, err = TTest(one, "group", "score")
	if !core.IsValidationError(err) {
		t.Fatalf("one group should fail validation, got %v", err)
	}
}

func TestTTest_SkipsMissingMeasures(t *testing.T) {
	frame, err := dataset.NewFrame(
		dataset.Column{Name: "group", Values: []dataset.Value{
			dataset.Category("A"), dataset.Category("A"), dataset.Category("B"), dataset.Category("B"),
		}},
		dataset.Column{Name: "score", Values: []dataset.Value{
			dataset.Number(1), dataset.Missing(), dataset.Number(3), dataset.Number(5),
		}},
	)
	if err != nil {
		t.Fatalf("frame: %v", err)
	}

	r, terr := TTest(frame, "group", "score")
	if terr != nil {
		t.Fatalf("t-test: %v", terr)
	}
	if math.IsNaN(r.Statistic) || math.IsNaN(r.PValue) {
		t.Errorf("missing measures must not poison the test: t=%v p=%v", r.Statistic, r.PValue)
	}
}
