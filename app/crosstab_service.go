package app

import (
	"context"

	"goxtab/adapters/stats/engine"
	"goxtab/domain/crosstab"
	"goxtab/domain/dataset"
)

// Options switches off the optional parts of a crosstab computation. Skipping
// is a cheap short-circuit, not an error path.
type Options struct {
	IncludePercentages bool
	IncludeStatistics  bool
}

// DefaultOptions computes everything.
func DefaultOptions() Options {
	return Options{IncludePercentages: true, IncludeStatistics: true}
}

// CrosstabService assembles a complete crosstab result: contingency table,
// percentage views, and the chi-square summary.
type CrosstabService struct {
	builder *engine.TableBuilder
	tests   *engine.TestEngine
}

// NewCrosstabService creates a crosstab service.
func NewCrosstabService() *CrosstabService {
	return &CrosstabService{
		builder: engine.NewTableBuilder(),
		tests:   engine.NewTestEngine(),
	}
}

// Generate computes one immutable CrosstabResult for a (row variable, column
// variable) pair. Every call on the same frame and parameters yields an
// identical result; a new request always produces a new result object.
func (s *CrosstabService) Generate(ctx context.Context, frame *dataset.Frame, rowVar, colVar string, opts Options) (*crosstab.CrosstabResult, error) {
	table, err := s.builder.Build(frame, rowVar, colVar)
	if err != nil {
		return nil, err
	}

	result := &crosstab.CrosstabResult{Table: table}

	if opts.IncludePercentages {
		result.RowPercentages = crosstab.RowView(table)
		result.ColumnPercentages = crosstab.ColumnView(table)
		result.TotalPercentages = crosstab.TotalView(table)
	}

	if opts.IncludeStatistics {
		result.Statistics = engine.ChiSquare(table)
	}

	return result, nil
}

// PerformTest runs a single statistical test between two variables without
// building the full result, dispatching on the requested kind.
func (s *CrosstabService) PerformTest(ctx context.Context, frame *dataset.Frame, rowVar, colVar string, kind crosstab.TestKind) (crosstab.TestResult, error) {
	return s.tests.Run(ctx, frame, rowVar, colVar, kind)
}
