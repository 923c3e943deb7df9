// Package step contains single-value, synchronous primitives that operate
// on an already-settled Result[T]. They are the building blocks the pipe
// package composes lazily; they can also be used on their own.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Map/Try/Switch: transform the successful value (pure, fallible, result-returning)
// - Tee: side effects on success; an effect error aborts the chain
// - Validate: fail with a given error when a predicate rejects the value
// - Branch: run exactly one of two functions depending on a condition
// - Recover: turn failure back into success
// - Finalize: run an effect on both paths; its error overrides the state
// - Fold: reduce to a concrete value via success/error handlers
//
// A failed input short-circuits every primitive except Recover and Finalize.
// Panics inside caller functions are captured into the failure channel.
package step
