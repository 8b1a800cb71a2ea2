package rotate

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// All applies fn to every text using at most limit goroutines
// and returns the results in input order. A limit <= 0 means no limit.
func All(ctx context.Context, texts []string, fn func(string) string, limit int) ([]string, error) {
	out := make([]string, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			g.Wait()
			return nil, err
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = fn(text)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
