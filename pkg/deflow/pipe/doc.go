// Package pipe provides a deferred, fluent Pipeline[T] for composing
// transformation, side-effect, conditional and recovery steps over a single
// eventual value.
//
// A Pipeline is a description, not a running computation: every combinator
// wraps the previous producer in a new closure and no step executes until a
// terminal operation is invoked. Starting work at construction time is the
// anti-pattern this design exists to avoid — a partially-built chain must
// never run. Because producers are pure closures, a terminal can be invoked
// repeatedly and each call re-executes the chain from its root; keeping step
// functions idempotent across runs is the caller's responsibility.
//
// Key operations:
// - Of/FromResult/From: build a root pipeline from a value, a settled result
//   or a producer function
// - Map/Try/Then/IfElse: type-changing combinators (package functions)
// - Map/Try/If/Tap/Log/Assert/Catch/Finally: same-type combinators (methods)
// - Run/RunSafe/RunAndForget: terminal operations, the only way to execute
//
// Run propagates failure as an error. RunSafe never fails and wraps the
// outcome in a SafeResult. RunAndForget executes in the background and only
// reports failure to the diagnostic sink.
//
// Failure anywhere short-circuits every later Map/Try/If/IfElse/Tap/Assert
// step until a Catch intercepts it; Finally is the only step that runs on
// both paths. Panics inside step functions are captured into the failure
// channel rather than escaping a terminal.
package pipe
