package crosstab

import (
	"errors"
	"fmt"
	"math"
)

// BannerTable aggregates the crosstab results of a row-variable x
// column-variable cross product. Keys preserves the row-major request order;
// Failures records per-pair errors so one invalid pair does not discard the
// rest of the grid. Constructed transiently per banner request.
type BannerTable struct {
	Keys     []PairKey
	Results  map[PairKey]*CrosstabResult
	Failures map[PairKey]error
	Combined *Grid
}

// NewBannerTable creates an empty banner table.
func NewBannerTable() *BannerTable {
	return &BannerTable{
		Results:  make(map[PairKey]*CrosstabResult),
		Failures: make(map[PairKey]error),
	}
}

// Add appends a computed pair in iteration order.
func (b *BannerTable) Add(key PairKey, result *CrosstabResult) {
	b.Keys = append(b.Keys, key)
	b.Results[key] = result
}

// AddFailure appends a failed pair in iteration order.
func (b *BannerTable) AddFailure(key PairKey, err error) {
	b.Keys = append(b.Keys, key)
	b.Failures[key] = err
}

// Err joins all per-pair failures, or nil when every pair succeeded.
func (b *BannerTable) Err() error {
	if len(b.Failures) == 0 {
		return nil
	}
	errs := make([]error, 0, len(b.Failures))
	for _, key := range b.Keys {
		if err, ok := b.Failures[key]; ok {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

// Combine merges all successful results into one wide grid: an outer join on
// the rendered row index (first-appearance order) with each result's columns
// prefixed by its pair key. Cells for rows absent from a sub-table are NaN,
// since structural absence is not an observed zero count.
func (b *BannerTable) Combine() *Grid {
	var index []string
	seen := make(map[string]int)
	grids := make([]*Grid, 0, len(b.Keys))
	keys := make([]PairKey, 0, len(b.Keys))

	for _, key := range b.Keys {
		result, ok := b.Results[key]
		if !ok {
			continue
		}
		g := result.Table.Render()
		grids = append(grids, g)
		keys = append(keys, key)
		for _, label := range g.Index {
			if _, ok := seen[label]; !ok {
				seen[label] = len(index)
				index = append(index, label)
			}
		}
	}
	if len(grids) == 0 {
		return nil
	}

	combined := &Grid{Index: index}
	width := 0
	for _, g := range grids {
		width += len(g.Columns)
	}
	combined.Columns = make([]string, 0, width)
	combined.Data = make([][]float64, len(index))
	for i := range combined.Data {
		combined.Data[i] = make([]float64, 0, width)
	}

	for k, g := range grids {
		for _, col := range g.Columns {
			combined.Columns = append(combined.Columns, fmt.Sprintf("%s_%s", keys[k], col))
		}
		rowAt := make(map[string]int, len(g.Index))
		for i, label := range g.Index {
			rowAt[label] = i
		}
		for i, label := range index {
			if src, ok := rowAt[label]; ok {
				combined.Data[i] = append(combined.Data[i], g.Data[src]...)
			} else {
				for range g.Columns {
					combined.Data[i] = append(combined.Data[i], math.NaN())
				}
			}
		}
	}

	b.Combined = combined
	return combined
}
