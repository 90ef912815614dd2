// Package future provides single-assignment result cells and a spawn
// helper for running functions as concurrently started tasks.
//
// A Future is resolved at most once. The producer side is Resolve and
// Reject; the consumer side is Await, Done, Resolved and Peek. The cell
// is safe for concurrent use: the first settle wins, later settles
// return ErrAlreadyResolved.
package future

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrAlreadyResolved is returned by Resolve and Reject once a future has
// been settled. Double resolution is a contract violation on the
// producer's side; the first result is kept.
var ErrAlreadyResolved = errors.New("future: already resolved")

// Result carries the outcome of a settled future.
type Result[T any] struct {
	Value T
	Err   error
}

// Future is a single-assignment asynchronous result handle.
type Future[T any] struct {
	settling atomic.Bool
	done     chan struct{}
	res      Result[T]
}

func New[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolve settles the future with a success value.
func (f *Future[T]) Resolve(value T) error {
	return f.settle(Result[T]{Value: value})
}

// Reject settles the future with a failure. The error object is carried
// verbatim so consumers can inspect or unwrap it.
func (f *Future[T]) Reject(err error) error {
	return f.settle(Result[T]{Err: err})
}

func (f *Future[T]) settle(res Result[T]) error {
	if !f.settling.CompareAndSwap(false, true) {
		return ErrAlreadyResolved
	}
	f.res = res
	close(f.done)
	return nil
}

// Done returns a channel closed once the future is settled.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Resolved reports whether the future has settled, without blocking.
func (f *Future[T]) Resolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Peek returns the result if the future has settled.
func (f *Future[T]) Peek() (Result[T], bool) {
	select {
	case <-f.done:
		return f.res, true
	default:
		return Result[T]{}, false
	}
}

// Await blocks until the future settles or ctx is done, whichever comes
// first. Abandoning the wait does not cancel the producer.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.res.Value, f.res.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
