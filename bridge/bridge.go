package bridge

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/effect_bridge_go/effect"
	"github.com/on-the-ground/effect_bridge_go/future"
)

// FutureToBox makes a future pass its success or failure on to the given
// box. The binding fires exactly once, only after the future settles,
// and carries the full error object on the failure path.
//
// A panic raised inside the box's own Succeed/Fail is recovered and
// redelivered as the box's failure, so a buggy continuation never kills
// the delivering goroutine.
func FutureToBox[T any](fut *future.Future[T], box effect.Box) {
	bindingID := uuid.NewString()

	ready := make(chan struct{})
	go func() {
		close(ready)
		<-fut.Done()
		res, _ := fut.Peek()

		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic in box continuation",
					zap.String("bindingId", bindingID),
					zap.Any("panic", r),
				)
				box.Fail(fmt.Errorf("panic in box continuation: %v", r))
			}
		}()

		if res.Err != nil {
			box.Fail(res.Err)
			return
		}
		box.Succeed(res.Value)
	}()
	<-ready

	logger.Debug("bound future to box", zap.String("bindingId", bindingID))
}

// Perform performs an effect, returning a future that fires with the
// effect's ultimate result. It drives the synchronous dispatch engine
// exactly once and returns without blocking; the performers reached
// through the dispatcher settle the future from their own goroutines.
func Perform(ctx context.Context, d effect.Dispatcher, e *effect.Effect) *future.Future[any] {
	fut := future.New[any]()
	effectID := uuid.NewString()

	bound := e.On(
		func(value any) (any, error) {
			if err := fut.Resolve(value); err != nil {
				logger.Warn("effect resolved more than once",
					zap.String("effectId", effectID),
					zap.Error(err),
				)
			}
			return value, nil
		},
		func(failure error) (any, error) {
			if err := fut.Reject(failure); err != nil {
				logger.Warn("effect resolved more than once",
					zap.String("effectId", effectID),
					zap.Error(err),
				)
			}
			return nil, failure
		},
	)

	logger.Debug("performing effect",
		zap.String("effectId", effectID),
		zap.String("intent", fmt.Sprintf("%T", e.Intent)),
	)
	effect.Perform(ctx, d, bound)

	return fut
}

// MakeDispatcher creates a dispatcher that knows how to perform the
// built-in Delay and ParallelEffects intents with goroutine-based
// implementations. Compose it with effect.NewBaseDispatcher (and any
// application dispatchers) for a complete lookup chain.
func MakeDispatcher() effect.Dispatcher {
	td := effect.NewTypeDispatcher()
	effect.Register[effect.Delay](td, PerformDelay)
	effect.Register[effect.ParallelEffects](td, PerformParallel)
	return td
}
