package engine

import (
	"context"

	"goxtab/domain/core"
	"goxtab/domain/crosstab"
	"goxtab/domain/dataset"
)

// TestEngine dispatches to the supported statistical test kinds. It never
// falls back between kinds: an unsupported kind is a configuration failure.
type TestEngine struct {
	builder *TableBuilder
}

// NewTestEngine creates a test engine.
func NewTestEngine() *TestEngine {
	return &TestEngine{builder: NewTableBuilder()}
}

// Run performs the requested test between two variables of the frame. For the
// table-based tests (chi-square, Fisher exact) the variables are
// cross-classified first; for the group-based tests (t-test, ANOVA) the first
// variable partitions the second.
func (e *TestEngine) Run(ctx context.Context, frame *dataset.Frame, rowVar, colVar string, kind crosstab.TestKind) (crosstab.TestResult, error) {
	switch kind {
	case crosstab.TestChiSquare:
		table, err := e.builder.Build(frame, rowVar, colVar)
		if err != nil {
			return nil, err
		}
		return ChiSquare(table), nil
	case crosstab.TestFisherExact:
		table, err := e.builder.Build(frame, rowVar, colVar)
		if err != nil {
			return nil, err
		}
		result, err := FisherExact(table)
		if err != nil {
			return nil, err
		}
		return result, nil
	case crosstab.TestTTest:
		result, err := TTest(frame, rowVar, colVar)
		if err != nil {
			return nil, err
		}
		return result, nil
	case crosstab.TestAnova:
		result, err := Anova(frame, rowVar, colVar)
		if err != nil {
			return nil, err
		}
		return result, nil
	default:
		return nil, core.NewUnsupportedTestError(string(kind))
	}
}
