// Package bridge runs the synchronous, callback-based effect engine on
// top of goroutines and single-assignment futures.
//
// The most important functions here are Perform, MakeDispatcher, and
// Performer.
//
// The effect package on its own is agnostic about how performers do
// their work; this package supplies the asynchronous glue: Perform turns
// an effect into a future, Performer turns a native async function into
// a callback-style performer, FutureToBox wires a future's outcome into
// a completion box, and MakeDispatcher exposes goroutine-based
// performers for the built-in Delay and ParallelEffects intents.
//
// Every performed effect eventually settles its future exactly once,
// with either the success value or the original error object. Nothing
// here polls: resolution is driven entirely by completion callbacks.
package bridge
