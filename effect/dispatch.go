package effect

import (
	"context"
	"reflect"
)

// Performer executes one intent kind. It must arrange for exactly one of
// box.Succeed or box.Fail to be called, now or later, and return without
// blocking the caller.
type Performer func(ctx context.Context, d Dispatcher, intent any, box Box)

// Dispatcher resolves an intent to the performer that knows how to
// execute it.
type Dispatcher interface {
	PerformerFor(intent any) (Performer, bool)
}

// DispatcherFunc adapts a lookup function to the Dispatcher interface.
type DispatcherFunc func(intent any) (Performer, bool)

func (f DispatcherFunc) PerformerFor(intent any) (Performer, bool) {
	return f(intent)
}

var _ Dispatcher = DispatcherFunc(nil)

// TypeDispatcher maps intent types to performers.
type TypeDispatcher struct {
	performers map[reflect.Type]Performer
}

var _ Dispatcher = &TypeDispatcher{}

func NewTypeDispatcher() *TypeDispatcher {
	return &TypeDispatcher{performers: map[reflect.Type]Performer{}}
}

func (td *TypeDispatcher) PerformerFor(intent any) (Performer, bool) {
	p, ok := td.performers[reflect.TypeOf(intent)]
	return p, ok
}

// Register installs p as the performer for intent type I, replacing any
// previous registration for that type.
func Register[I any](td *TypeDispatcher, p Performer) {
	td.performers[reflect.TypeOf((*I)(nil)).Elem()] = p
}

// ComposedDispatcher tries each sub-dispatcher in order; the first one
// that recognizes the intent wins.
type ComposedDispatcher struct {
	dispatchers []Dispatcher
}

var _ Dispatcher = &ComposedDispatcher{}

func NewComposedDispatcher(dispatchers ...Dispatcher) *ComposedDispatcher {
	return &ComposedDispatcher{dispatchers: dispatchers}
}

func (cd *ComposedDispatcher) PerformerFor(intent any) (Performer, bool) {
	for _, d := range cd.dispatchers {
		if p, ok := d.PerformerFor(intent); ok {
			return p, true
		}
	}
	return nil, false
}
