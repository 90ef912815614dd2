// Package effect implements a minimal synchronous effect-dispatch engine.
//
// An Effect pairs an opaque intent value with a chain of success/failure
// continuations. Performing an effect looks up a performer for the intent
// in a Dispatcher, hands it a single-use Box, and drives the continuation
// chain with whatever the performer eventually writes into the box.
//
// # What is an intent?
//
// An intent is any value that describes a unit of work without doing it:
// a delay, a constant, a group of sub-effects to run concurrently.
// Performers give intents their meaning; the engine only routes them.
//
// # Dispatch
//
// Dispatchers are a single-method capability: given an intent, hand back
// the performer for it, or report that none exists. The engine ships a
// TypeDispatcher keyed by intent type, a ComposedDispatcher that tries an
// ordered list of dispatchers (first match wins), and a DispatcherFunc
// adapter for ad-hoc lookup logic.
//
// # Continuations
//
// Continuations never block; they transform a result, or return a new
// *Effect to splice into the chain. A continuation that panics fails the
// rest of its chain instead of crashing the goroutine that delivered the
// result.
//
// Performing is callback-driven end to end. The engine never polls and
// never blocks a goroutine of its own; asynchronous performers live in
// the bridge package.
package effect
