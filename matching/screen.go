// SPDX-License-Identifier: MIT
//
// File: screen.go
// Role: Bulk screening of one query against many targets.
//
// Each worker owns one searcher built by the caller's constructor, so no
// search state is shared. Targets are split by stride; hits are collected in
// per-worker roaring bitmaps and merged once at the end.

package matching

import (
	"context"
	"fmt"
	"runtime"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/molmatch/molgraph"
)

// Searcher is the part of SubstructureSearch and MCSearch that Screen uses.
type Searcher interface {
	SetQuery(q molgraph.Graph) error
	MappingExists(target molgraph.Graph) (bool, error)
	Stop()
}

// ScreenOption configures Screen.
type ScreenOption func(*screenConfig)

type screenConfig struct {
	workers int
}

// WithWorkers sets the number of concurrent searchers. Panics if n < 1.
func WithWorkers(n int) ScreenOption {
	if n < 1 {
		panic("matching: WithWorkers(n<1)")
	}

	return func(c *screenConfig) { c.workers = n }
}

// Screen runs MappingExists of query against every target and returns the
// indices of the targets that matched.
//
// newSearcher is called once per worker. When ctx is cancelled every running
// search is stopped and ctx.Err() is returned with a nil bitmap. A search
// already past its stop check when ctx is cancelled runs to completion, and
// its result is discarded.
func Screen(ctx context.Context, query molgraph.Graph, targets []molgraph.Graph, newSearcher func() Searcher, opts ...ScreenOption) (*roaring.Bitmap, error) {
	if query == nil {
		return nil, ErrNilGraph
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := screenConfig{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(targets) == 0 {
		return roaring.New(), nil
	}
	workers := min(cfg.workers, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	hits := make([]*roaring.Bitmap, workers)
	for w := 0; w < workers; w++ {
		hits[w] = roaring.New()
		g.Go(func() error {
			return screenStride(gctx, query, targets, newSearcher(), w, workers, hits[w])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return roaring.FastOr(hits...), nil
}

// screenStride searches targets w, w+stride, ... and records hits.
func screenStride(ctx context.Context, query molgraph.Graph, targets []molgraph.Graph, s Searcher, w, stride int, hits *roaring.Bitmap) error {
	if err := s.SetQuery(query); err != nil {
		return err
	}
	release := context.AfterFunc(ctx, s.Stop)
	defer release()

	for i := w; i < len(targets); i += stride {
		if err := ctx.Err(); err != nil {
			return err
		}
		ok, err := s.MappingExists(targets[i])
		if err != nil {
			return fmt.Errorf("matching: Screen: target %d: %w", i, err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if ok {
			hits.Add(uint32(i))
		}
	}

	return nil
}
