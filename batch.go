package esperfft

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TransformFrames transforms independent frames of n samples concurrently.
//
// Each frame gets a newly allocated 2n-scalar result at the same index of the
// returned slice. At most workers frames are in flight; workers <= 0 means
// runtime.GOMAXPROCS(0). Every worker owns its own Plan, so no scratch is
// shared. Cancellation is checked before each frame starts; the first error
// (including ctx.Err()) is returned and no partial result is.
func TransformFrames[T Float](ctx context.Context, kind Kind, n int, frames [][]T, workers int) ([][]T, error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}

	out := make([][]T, len(frames))
	if len(frames) == 0 {
		return out, nil
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	workers = min(workers, len(frames))

	plans := make(chan *Plan[T], workers)
	for range workers {
		plan, err := NewPlan[T](n)
		if err != nil {
			return nil, err
		}

		plans <- plan
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, frame := range frames {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			plan := <-plans
			defer func() { plans <- plan }()

			dst := make([]T, 2*n)
			if err := plan.Transform(dst, frame, kind); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}

			out[i] = dst

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
