package bench

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	kbc "github.com/jamesainslie/go-kbc"
)

// Compare evaluates every file at cut-off n, filtered and non-filtered, with
// up to workers files in flight (all at once when workers <= 0). Results are
// returned in the order of files. The first failure cancels files not yet
// started.
//
// Each file gets its own evaluators and filter index; opts are shared but
// only read.
func Compare(ctx context.Context, files []string, n, workers int, opts ...kbc.Option) ([]kbc.Results, error) {
	results := make([]kbc.Results, len(files))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := kbc.CalculateResults(file, n, opts...)
			if err != nil {
				return fmt.Errorf("evaluating %s: %w", file, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
