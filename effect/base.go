package effect

import "context"

// NewBaseDispatcher returns a dispatcher for the minimal built-in
// intents that need no scheduler: Constant, Failure and Func. Compose it
// after richer dispatchers so they get first pick.
func NewBaseDispatcher() *TypeDispatcher {
	td := NewTypeDispatcher()
	Register[Constant](td, performConstant)
	Register[Failure](td, performFailure)
	Register[Func](td, performFunc)
	return td
}

func performConstant(_ context.Context, _ Dispatcher, intent any, box Box) {
	box.Succeed(intent.(Constant).Result)
}

func performFailure(_ context.Context, _ Dispatcher, intent any, box Box) {
	box.Fail(intent.(Failure).Err)
}

func performFunc(_ context.Context, _ Dispatcher, intent any, box Box) {
	value, err := intent.(Func).Fn()
	if err != nil {
		box.Fail(err)
		return
	}
	box.Succeed(value)
}
