package bridge_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/effect_bridge_go/bridge"
	"github.com/on-the-ground/effect_bridge_go/effect"
	"github.com/on-the-ground/effect_bridge_go/shared/timebound"
)

func TestParallel_PreservesSubmissionOrder(t *testing.T) {
	ctx := context.Background()

	// the middle effect completes last in wall-clock time
	e := effect.Parallel(
		effect.New(effect.Constant{Result: "a"}),
		effect.New(effect.Delay{Duration: 10 * time.Millisecond}).
			OnSuccess(func(any) (any, error) {
				return effect.New(effect.Constant{Result: "..."}), nil
			}),
		effect.New(effect.Constant{Result: "b"}),
	)

	v, err := bridge.Perform(ctx, dispatcher(), e).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "...", "b"}, v)
}

func TestParallel_FirstErrorWinsWithoutWaitingForStragglers(t *testing.T) {
	ctx := context.Background()
	sentinel := errors.New("my error")

	fail := effect.New(effect.Delay{Duration: 10 * time.Millisecond}).
		OnSuccess(func(any) (any, error) {
			return nil, sentinel
		})

	e := effect.Parallel(
		effect.New(effect.Delay{Duration: time.Second}),
		effect.New(effect.Delay{Duration: time.Second}),
		fail,
	)

	sw := timebound.Start()
	_, err := bridge.Perform(ctx, dispatcher(), e).Await(ctx)
	elapsed := sw.Elapsed()

	var first *effect.FirstError
	require.ErrorAs(t, err, &first)
	assert.Same(t, sentinel, first.Err)
	assert.Equal(t, 2, first.Index)
	require.ErrorIs(t, err, sentinel)

	// rejected on the failing effect's completion, not the siblings'
	assert.Less(t, elapsed, 500*time.Millisecond)
}

func TestParallel_FirstErrorByCompletionOrderNotIndex(t *testing.T) {
	ctx := context.Background()
	fastErr := errors.New("fast failure")
	slowErr := errors.New("slow failure")

	slow := effect.New(effect.Delay{Duration: 100 * time.Millisecond}).
		OnSuccess(func(any) (any, error) { return nil, slowErr })
	fast := effect.New(effect.Delay{Duration: 5 * time.Millisecond}).
		OnSuccess(func(any) (any, error) { return nil, fastErr })

	// the lower-index effect fails later in wall-clock time
	_, err := bridge.Perform(ctx, dispatcher(), effect.Parallel(slow, fast)).Await(ctx)

	var first *effect.FirstError
	require.ErrorAs(t, err, &first)
	assert.Same(t, fastErr, first.Err)
	assert.Equal(t, 1, first.Index)
}

func TestParallel_EmptySucceedsImmediately(t *testing.T) {
	ctx := context.Background()

	v, err := bridge.Perform(ctx, dispatcher(), effect.Parallel()).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, []any{}, v)
}

func TestParallel_NestedThroughSameDispatcher(t *testing.T) {
	ctx := context.Background()

	inner := effect.Parallel(
		effect.New(effect.Constant{Result: 1}),
		effect.New(effect.Constant{Result: 2}),
	)
	outer := effect.Parallel(
		inner,
		effect.New(effect.Constant{Result: 3}),
	)

	v, err := bridge.Perform(ctx, dispatcher(), outer).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{1, 2}, 3}, v)
}

func TestParallel_AggregateSettlesExactlyOnce(t *testing.T) {
	ctx := context.Background()
	errA := errors.New("a failed")
	errB := errors.New("b failed")

	e := effect.Parallel(
		effect.New(effect.Failure{Err: errA}),
		effect.New(effect.Failure{Err: errB}),
	)

	fut := bridge.Perform(ctx, dispatcher(), e)
	_, err := fut.Await(ctx)

	var first *effect.FirstError
	require.ErrorAs(t, err, &first)

	// the losing failure must not overwrite the settled aggregate
	time.Sleep(50 * time.Millisecond)
	_, again := fut.Await(ctx)
	assert.Same(t, err, again)
}
