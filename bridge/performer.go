package bridge

import (
	"context"
	"reflect"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/on-the-ground/effect_bridge_go/effect"
	"github.com/on-the-ground/effect_bridge_go/future"
)

// AsyncFunc is the native async shape of a performer: it may suspend on
// ctx-aware operations and returns its outcome instead of writing into a
// box. extras carries any additional arguments bound at decoration time,
// unchanged.
type AsyncFunc func(ctx context.Context, d effect.Dispatcher, intent any, extras ...any) (any, error)

// Performer adapts fn to the callback-style performer contract.
//
// The returned performer schedules fn as a concurrently running task,
// fire-and-forget from the dispatcher's point of view, binds the task's
// future to the supplied box via FutureToBox, and returns without
// blocking.
//
// Example:
//
//	performFoo := bridge.Performer(func(ctx context.Context, d effect.Dispatcher, intent any, _ ...any) (any, error) {
//		return doSideEffectingOperation(ctx, intent)
//	})
//
// Performer panics on a nil fn: that failure happens before any box
// binding exists, so it propagates to the caller rather than being
// swallowed into a box.
func Performer(fn AsyncFunc, extras ...any) effect.Performer {
	if fn == nil {
		panic("bridge: nil performer function")
	}
	name := FuncName(fn)

	return func(ctx context.Context, d effect.Dispatcher, intent any, box effect.Box) {
		fut := future.Go(ctx, func(ctx context.Context) (any, error) {
			return fn(ctx, d, intent, extras...)
		})
		logger.Debug("scheduled async performer", zap.String("performer", name))
		FutureToBox(fut, box)
	}
}

// genericPerformerName identifies decorated callables whose own name
// cannot be recovered.
const genericPerformerName = "asyncPerformer"

// FuncName reports fn's name for diagnostics, trimmed of its package
// path. Non-introspectable callables (nil values, non-functions) fall
// back to the generic performer name instead of failing.
func FuncName(fn any) string {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return genericPerformerName
	}

	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return genericPerformerName
	}
	name := rf.Name()
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	if name == "" {
		return genericPerformerName
	}
	return name
}
