// Package deflow holds the result core shared by the step and pipe packages:
// Result[T] (success/failure union with execution identity), SafeResult[T]
// (the never-failing union returned by pipe.RunSafe) and small error helpers.
//
// Result[T] is immutable; every constructor stamps a fresh uuid and a UTC
// creation time, and FailFrom re-types a failure while preserving both.
package deflow
