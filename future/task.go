package future

import (
	"context"
	"fmt"
)

// Go runs fn on its own goroutine, starting now, and returns a future
// settled with fn's outcome. The goroutine is guaranteed to have started
// before Go returns; whether anyone awaits the future does not affect
// fn's execution. A panic inside fn rejects the future.
//
// Go panics on a nil fn: that is a setup bug on the caller's side, and
// there is no future yet to carry it.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	if fn == nil {
		panic("future: nil task function")
	}

	fut := New[T]()
	ready := make(chan struct{})
	go func() {
		close(ready)
		defer func() {
			if r := recover(); r != nil {
				_ = fut.Reject(fmt.Errorf("panic in task: %v", r))
			}
		}()

		value, err := fn(ctx)
		if err != nil {
			_ = fut.Reject(err)
			return
		}
		_ = fut.Resolve(value)
	}()
	<-ready

	return fut
}
