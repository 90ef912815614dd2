package effect

import "time"

// Delay is the well-known intent asking its performer to suspend for
// Duration before succeeding with a nil value.
type Delay struct {
	Duration time.Duration
}

// ParallelEffects is the well-known intent asking its performer to run
// the sub-effects concurrently and succeed with their results in
// submission order, or fail with the first error to complete.
type ParallelEffects struct {
	Effects []*Effect
}

// Parallel wraps the given effects in a ParallelEffects intent.
func Parallel(effects ...*Effect) *Effect {
	return New(ParallelEffects{Effects: effects})
}

// Constant succeeds immediately with Result.
type Constant struct {
	Result any
}

// Failure fails immediately with Err.
type Failure struct {
	Err error
}

// Func defers to a plain function at perform time. Fn must not block;
// wrap blocking work in an asynchronous performer instead.
type Func struct {
	Fn func() (any, error)
}
