package effect

// SuccessFunc transforms a successful result. Returning a *Effect splices
// that effect into the continuation chain in place of the value.
type SuccessFunc func(value any) (any, error)

// FailureFunc handles an upstream failure. It may recover by returning a
// value (or a *Effect to splice in), or pass the failure on by returning
// a non-nil error.
type FailureFunc func(err error) (any, error)

type callback struct {
	success SuccessFunc
	failure FailureFunc
}

// Effect is an intent plus its attached continuations. The intent payload
// is read-only to the engine; On never mutates, it returns a new Effect
// sharing the same intent.
type Effect struct {
	Intent    any
	callbacks []callback
}

// New returns an effect wrapping the given intent with no continuations.
func New(intent any) *Effect {
	return &Effect{Intent: intent}
}

// On returns a new Effect with the success/failure pair appended to the
// continuation chain. Either function may be nil, in which case results
// of that polarity pass through the pair untouched.
func (e *Effect) On(success SuccessFunc, failure FailureFunc) *Effect {
	cbs := make([]callback, 0, len(e.callbacks)+1)
	cbs = append(cbs, e.callbacks...)
	cbs = append(cbs, callback{success: success, failure: failure})
	return &Effect{Intent: e.Intent, callbacks: cbs}
}

// OnSuccess is shorthand for On(success, nil).
func (e *Effect) OnSuccess(success SuccessFunc) *Effect {
	return e.On(success, nil)
}

// OnFailure is shorthand for On(nil, failure).
func (e *Effect) OnFailure(failure FailureFunc) *Effect {
	return e.On(nil, failure)
}
