package engine

import (
	"context"
	"errors"
	"fmt"

	"axesarif/internal/axe"

	"golang.org/x/sync/errgroup"
)

// loadResult is the outcome of loading one source.
type loadResult struct {
	Source  Source
	Results *axe.Results
	Err     error
}

// loadAll loads every source with at most concurrency reads in flight.
// Results keep the order of sources. Unless keepGoing is set, the first
// failure cancels the remaining loads and is returned.
func loadAll(ctx context.Context, loader *Loader, sources []Source, concurrency int, keepGoing bool) ([]loadResult, error) {
	if loader == nil {
		return nil, errors.New("loader is nil")
	}
	if concurrency <= 0 {
		return nil, fmt.Errorf("concurrency must be >= 1, got %d", concurrency)
	}

	out := make([]loadResult, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, src := range sources {
		g.Go(func() error {
			results, err := loader.Load(gctx, src)
			out[i] = loadResult{Source: src, Results: results, Err: err}
			if err != nil && !keepGoing {
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	if err := ctx.Err(); err != nil {
		return out, err
	}
	return out, nil
}
