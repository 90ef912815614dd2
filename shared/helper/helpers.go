package helper

import (
	"fmt"
)

// TypedIntent safely asserts an opaque intent value to the concrete type
// a performer expects. Returns an error if the assertion fails, so a
// misrouted intent surfaces as a performer failure instead of a panic.
func TypedIntent[T any](intent any) (T, error) {
	var zero T

	val, ok := intent.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected intent type: got %T, want %T", intent, zero)
	}

	return val, nil
}

// MustTypedIntent is the panic-on-failure variant of TypedIntent.
// Use when the dispatcher guarantees the intent type (e.g. a
// TypeDispatcher registration keyed by that exact type).
func MustTypedIntent[T any](intent any) T {
	val, err := TypedIntent[T](intent)
	if err != nil {
		panic(err)
	}
	return val
}
