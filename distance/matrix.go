package distance

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/treespace/phylo"
)

// Matrix returns the symmetric matrix of metric over every pair of trees.
// The diagonal is zero. At most workers pairs are computed at once;
// workers ≤ 0 means GOMAXPROCS.
//
// The first failing pair cancels the rest, and its error is returned with
// the pair's indices attached.
func Matrix(ctx context.Context, trees []*phylo.Tree, metric Metric, workers int, opts ...Option) ([][]float64, error) {
	// 1) Validate
	if _, ok := metricNames[metric]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMetric, metric)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	o := buildOptions(opts)

	n := len(trees)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}

	// 2) Upper triangle in parallel; each cell is written by one goroutine
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				d, err := Compute(gctx, metric, trees[i], trees[j], opts...)
				if err != nil {
					return fmt.Errorf("distance: pair (%d,%d): %w", i, j, err)
				}
				out[i][j] = d
				out[j][i] = d

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	o.Logger.Debug("distance matrix computed",
		slog.String("metric", metric.String()),
		slog.Int("trees", n),
		slog.Int("workers", workers))

	return out, nil
}
