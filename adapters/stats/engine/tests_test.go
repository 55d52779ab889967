package engine

import (
	"context"
	"strings"
	"testing"

	"goxtab/domain/core"
	"goxtab/domain/crosstab"
)

func TestTestEngine_DispatchesByKind(t *testing.T) {
	e := NewTestEngine()
	ctx := context.Background()

	frame := groupedFrame(t,
		[]string{"A", "A", "A", "B", "B", "B"},
		[]float64{1, 2, 3, 4, 5, 6},
	)

	cases := []struct {
		kind crosstab.TestKind
		want crosstab.TestKind
	}{
		{crosstab.TestChiSquare, crosstab.TestChiSquare},
		{crosstab.TestTTest, crosstab.TestTTest},
		{crosstab.TestAnova, crosstab.TestAnova},
	}
	for _, c := range cases {
		r, err := e.Run(ctx, frame, "group", "score", c.kind)
		if err != nil {
			t.Fatalf("%s: %v", c.kind, err)
		}
		if r.Kind() != c.want {
			t.Errorf("%s: result kind %s", c.kind, r.Kind())
		}
	}
}

func TestTestEngine_FisherNeeds2x2(t *testing.T) {
	e := NewTestEngine()

	// group x score has a 2x6 shape; Fisher must reject it rather than fall
	// back to another test.
	frame := groupedFrame(t,
		[]string{"A", "A", "A", "B", "B", "B"},
		[]float64{1, 2, 3, 4, 5, 6},
	)
	_, err := e.Run(context.Background(), frame, "group", "score", crosstab.TestFisherExact)
	if !core.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTestEngine_UnsupportedKind(t *testing.T) {
	e := NewTestEngine()
	frame := groupedFrame(t, []string{"A", "B"}, []float64{1, 2})

	_, err := e.Run(context.Background(), frame, "group", "score", crosstab.TestKind("kruskal"))
	if !core.IsConfigurationError(err) {
		t.Fatalf("unsupported kind should be a configuration error, got %v", err)
	}
	if core.IsValidationError(err) {
		t.Error("configuration errors must not double as validation errors")
	}
	if !strings.Contains(err.Error(), "kruskal") {
		t.Errorf("error should name the requested kind: %v", err)
	}
}
