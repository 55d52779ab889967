package app

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"goxtab/domain/core"
	"goxtab/domain/crosstab"
	"goxtab/domain/dataset"
	"goxtab/internal"
)

// BannerRequest describes a banner computation: the cross product of row and
// column variables, the per-pair options, and whether to build the combined
// wide table.
type BannerRequest struct {
	RowVariables    []string
	ColumnVariables []string
	Options         Options
	Combine         bool
	// Workers bounds the parallel pair computations; <= 0 means serial.
	Workers int
}

// BannerService fans a banner request out over the pair cross product and fans
// the results back in, in row-major request order. Each pair is independent,
// so the observable result is identical whether computed serially or in
// parallel. A failing pair is recorded per-pair instead of aborting the batch;
// partial banner grids stay useful.
type BannerService struct {
	crosstabs *CrosstabService
	log       *internal.Logger
}

// NewBannerService creates a banner service.
func NewBannerService(crosstabs *CrosstabService, log *internal.Logger) *BannerService {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &BannerService{crosstabs: crosstabs, log: log}
}

type pairOutcome struct {
	key    crosstab.PairKey
	result *crosstab.CrosstabResult
	err    error
}

// Generate computes the banner table for the request.
func (s *BannerService) Generate(ctx context.Context, frame *dataset.Frame, req BannerRequest) (*crosstab.BannerTable, error) {
	runID := core.RunID(core.NewID())
	pairs := len(req.RowVariables) * len(req.ColumnVariables)
	s.log.Info("banner run %s: %d pairs, workers=%d", runID, pairs, req.Workers)

	outcomes := make([]pairOutcome, pairs)

	workers := req.Workers
	if workers <= 0 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	idx := 0
	for _, rowVar := range req.RowVariables {
		for _, colVar := range req.ColumnVariables {
			i, rv, cv := idx, rowVar, colVar
			idx++

			if err := sem.Acquire(ctx, 1); err != nil {
				outcomes[i] = pairOutcome{key: crosstab.NewPairKey(rv, cv), err: err}
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer sem.Release(1)
				result, err := s.crosstabs.Generate(ctx, frame, rv, cv, req.Options)
				outcomes[i] = pairOutcome{key: crosstab.NewPairKey(rv, cv), result: result, err: err}
			}()
		}
	}
	wg.Wait()

	// Fan in strictly in request order so the banner, and the combined wide
	// table's column ordering, are deterministic.
	banner := crosstab.NewBannerTable()
	for _, o := range outcomes {
		if o.err != nil {
			s.log.Warn("banner run %s: pair %s failed: %v", runID, o.key, o.err)
			banner.AddFailure(o.key, o.err)
			continue
		}
		banner.Add(o.key, o.result)
	}

	if req.Combine {
		banner.Combine()
	}

	s.log.Info("banner run %s: %d ok, %d failed", runID, len(banner.Results), len(banner.Failures))
	return banner, nil
}
