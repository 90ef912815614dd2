package bridge

import (
	"context"

	"github.com/on-the-ground/effect_bridge_go/effect"
	"github.com/on-the-ground/effect_bridge_go/future"
	"github.com/on-the-ground/effect_bridge_go/shared/helper"
	"github.com/on-the-ground/effect_bridge_go/shared/orderedbuffer"
)

// PerformParallel performs an effect.ParallelEffects by running every
// sub-effect concurrently through the same dispatcher.
//
// If all sub-effects succeed, the aggregate succeeds with their values
// in submission order, regardless of completion order. On the first
// failure to complete in wall-clock time, the aggregate fails with
// effect.FirstError wrapping that error, without waiting for the
// remaining sub-effects.
//
// In-flight siblings are abandoned, not cancelled: their side effects
// may still run to completion, only their results are ignored.
var PerformParallel = Performer(performParallel)

type indexedResult struct {
	index int
	value any
}

func performParallel(ctx context.Context, d effect.Dispatcher, intent any, _ ...any) (any, error) {
	par, err := helper.TypedIntent[effect.ParallelEffects](intent)
	if err != nil {
		return nil, err
	}

	n := len(par.Effects)
	if n == 0 {
		return []any{}, nil
	}

	type completion struct {
		index int
		value any
		err   error
	}

	// buffered to capacity so abandoned stragglers never block on send
	completions := make(chan completion, n)
	for i, sub := range par.Effects {
		fut := Perform(ctx, d, sub)
		go func(index int, fut *future.Future[any]) {
			value, err := fut.Await(ctx)
			completions <- completion{index: index, value: value, err: err}
		}(i, fut)
	}

	buf := orderedbuffer.New(n, func(a, b indexedResult) int {
		return a.index - b.index
	})
	for buf.Len() < n {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case c := <-completions:
			if c.err != nil {
				return nil, &effect.FirstError{Err: c.err, Index: c.index}
			}
			buf.Insert(indexedResult{index: c.index, value: c.value})
		}
	}

	values := make([]any, 0, n)
	for _, r := range buf.Drain() {
		values = append(values, r.value)
	}
	return values, nil
}
