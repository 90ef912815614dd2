package bridge

import (
	"context"
	"time"

	"github.com/on-the-ground/effect_bridge_go/effect"
	"github.com/on-the-ground/effect_bridge_go/shared/helper"
)

// PerformDelay performs an effect.Delay by suspending on a timer and
// succeeding with a nil value once the duration has elapsed. Cancelling
// ctx before the timer fires propagates ctx.Err() as the failure.
var PerformDelay = Performer(performDelay)

func performDelay(ctx context.Context, _ effect.Dispatcher, intent any, _ ...any) (any, error) {
	delay, err := helper.TypedIntent[effect.Delay](intent)
	if err != nil {
		return nil, err
	}

	timer := time.NewTimer(delay.Duration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, nil
	}
}
