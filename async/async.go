// Package async fans work out over a sequence and waits for all of it.
package async

import (
	"context"
	"iter"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/danlock/collections/errors"
)

// IndexKey is the slog key holding the input position of the element whose fn failed.
const IndexKey = "async.index"

// Map calls fn for every element of seq, each in its own goroutine, and waits for all of them.
// Results are in input order. If any call fails, the first error is returned and ctx passed to
// the remaining calls is cancelled. The failing element's position is attached under IndexKey.
func Map[T, R any](ctx context.Context, seq iter.Seq[T], fn func(context.Context, T) (R, error)) ([]R, error) {
	return MapLimit(ctx, seq, -1, fn)
}

// MapLimit is Map running at most limit calls at once. A negative limit means no limit.
func MapLimit[T, R any](ctx context.Context, seq iter.Seq[T], limit int, fn func(context.Context, T) (R, error)) ([]R, error) {
	if limit == 0 {
		return nil, errors.New("limit of 0 would never run anything")
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	// results grows while goroutines run, so each one writes into its own pointer.
	var results []*R
	i := 0
	for v := range seq {
		if gctx.Err() != nil {
			break
		}
		out := new(R)
		results = append(results, out)
		idx := i
		g.Go(func() (err error) {
			*out, err = fn(gctx, v)
			return errors.WrapMetaCtx(gctx, err, slog.Int(IndexKey, idx))
		})
		i++
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err)
	}

	mapped := make([]R, len(results))
	for i, r := range results {
		mapped[i] = *r
	}
	return mapped, nil
}
