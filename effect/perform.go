package effect

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/google/uuid"
)

// Box is the single-use completion sink handed to a performer. Exactly
// one of Succeed or Fail must be invoked exactly once per box; a second
// write is dropped and logged as a contract violation.
type Box interface {
	Succeed(value any)
	Fail(err error)
}

// Perform executes an effect synchronously: it looks up the performer
// for the effect's intent and invokes it with a box that drives the
// effect's continuation chain. Perform itself never blocks; asynchronous
// performers resolve the chain from their own goroutines through the box.
//
// A failed lookup or a panicking performer is routed into the failure
// side of the continuation chain, never raised to the caller.
func Perform(ctx context.Context, d Dispatcher, e *Effect) {
	dispatch(ctx, d, e.Intent, e.callbacks)
}

func dispatch(ctx context.Context, d Dispatcher, intent any, callbacks []callback) {
	box := &chainBox{
		boxID:      uuid.NewString(),
		ctx:        ctx,
		dispatcher: d,
		callbacks:  callbacks,
	}

	performer, ok := d.PerformerFor(intent)
	if !ok {
		box.Fail(NoPerformerFoundError{Intent: intent})
		return
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				box.Fail(fmt.Errorf("panic in performer for %T: %v", intent, r))
			}
		}()
		performer(ctx, d, intent, box)
	}()
}

// chainBox delivers a performer's result into the remainder of an
// effect's continuation chain. Single-writer by construction: the
// performer owning the box is the only producer.
type chainBox struct {
	boxID      string
	ctx        context.Context
	dispatcher Dispatcher
	callbacks  []callback
	used       atomic.Bool
}

var _ Box = &chainBox{}

func (b *chainBox) Succeed(value any) { b.deliver(value, nil) }

func (b *chainBox) Fail(err error) { b.deliver(nil, err) }

func (b *chainBox) deliver(value any, err error) {
	if !b.used.CompareAndSwap(false, true) {
		log.Printf(
			"box %s: result delivered more than once, dropping %+v",
			b.boxID,
			map[string]interface{}{"value": value, "err": err},
		)
		return
	}
	runChain(b.ctx, b.dispatcher, value, err, b.callbacks)
}

// runChain walks the continuation chain iteratively. A continuation
// returning a *Effect suspends the walk: the chained effect is
// dispatched with the remaining continuations spliced after its own.
func runChain(ctx context.Context, d Dispatcher, value any, err error, callbacks []callback) {
	for {
		if err == nil {
			if chained, ok := value.(*Effect); ok {
				rest := make([]callback, 0, len(chained.callbacks)+len(callbacks))
				rest = append(rest, chained.callbacks...)
				rest = append(rest, callbacks...)
				dispatch(ctx, d, chained.Intent, rest)
				return
			}
		}

		if len(callbacks) == 0 {
			return
		}
		cb := callbacks[0]
		callbacks = callbacks[1:]

		switch {
		case err != nil && cb.failure != nil:
			failure, failed := cb.failure, err
			value, err = invoke(func() (any, error) { return failure(failed) })
		case err == nil && cb.success != nil:
			success, val := cb.success, value
			value, err = invoke(func() (any, error) { return success(val) })
		}
	}
}

// invoke runs one continuation, converting a panic into a failure so a
// buggy continuation cannot take down the delivering goroutine.
func invoke(fn func() (any, error)) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			value = nil
			err = fmt.Errorf("panic in effect continuation: %v", r)
		}
	}()
	return fn()
}
