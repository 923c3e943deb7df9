package step

import (
	"context"

	"github.com/nk-zt/deflow/pkg/deflow"
)

func Succeed[T any](input T) deflow.Result[T] {
	return deflow.Success(input)
}

func Fail[T any](err error) deflow.Result[T] {
	return deflow.Fail[T](err)
}

// Start executes a root producer, converting an error or panic to failure.
func Start[T any](ctx context.Context,
	fn func(ctx context.Context) (T, error)) deflow.Result[T] {

	return attempt(func() deflow.Result[T] {
		v, err := fn(ctx)
		if err != nil {
			return deflow.Fail[T](err)
		}
		return deflow.Success(v)
	})
}

// Map transforms the successful value; failure passes through unchanged.
func Map[In, Out any](ctx context.Context, input deflow.Result[In],
	onSuccess func(ctx context.Context, r In) Out) deflow.Result[Out] {

	if !input.IsSuccess() {
		return deflow.FailFrom[In, Out](input)
	}

	return attempt(func() deflow.Result[Out] {
		return deflow.Success(onSuccess(ctx, input.Result()))
	})
}

// Try calls a function returning (Out, error) and converts the error to failure.
func Try[In, Out any](ctx context.Context, input deflow.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) deflow.Result[Out] {

	if !input.IsSuccess() {
		return deflow.FailFrom[In, Out](input)
	}

	return attempt(func() deflow.Result[Out] {
		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			return deflow.Fail[Out](err)
		}
		return deflow.Success(out)
	})
}

// Switch moves from Result[In] to Result[Out] via a result-returning function.
func Switch[In, Out any](ctx context.Context, input deflow.Result[In],
	onSuccess func(ctx context.Context, r In) deflow.Result[Out]) deflow.Result[Out] {

	if !input.IsSuccess() {
		return deflow.FailFrom[In, Out](input)
	}

	return attempt(func() deflow.Result[Out] {
		return onSuccess(ctx, input.Result())
	})
}

// Tee runs a side effect on success. An effect error (or panic) fails the
// chain and the original value is discarded.
func Tee[T any](ctx context.Context, input deflow.Result[T],
	sideEffect func(ctx context.Context, r T) error) deflow.Result[T] {

	if !input.IsSuccess() {
		return input
	}

	return attempt(func() deflow.Result[T] {
		if err := sideEffect(ctx, input.Result()); err != nil {
			return deflow.Fail[T](err)
		}
		return input
	})
}

// Validate fails with err when the predicate rejects the value.
func Validate[T any](ctx context.Context, input deflow.Result[T],
	predicate func(ctx context.Context, in T) bool, err error) deflow.Result[T] {

	if !input.IsSuccess() {
		return input
	}

	return attempt(func() deflow.Result[T] {
		if predicate(ctx, input.Result()) {
			return input
		}
		return deflow.Fail[T](err)
	})
}

// Branch evaluates condition and runs exactly one of onTrue/onFalse on the
// value. A condition error is an ordinary chain failure.
func Branch[In, Out any](ctx context.Context, input deflow.Result[In],
	condition func(ctx context.Context, in In) (bool, error),
	onTrue func(ctx context.Context, r In) (Out, error),
	onFalse func(ctx context.Context, r In) (Out, error)) deflow.Result[Out] {

	if !input.IsSuccess() {
		return deflow.FailFrom[In, Out](input)
	}

	return attempt(func() deflow.Result[Out] {
		take, err := condition(ctx, input.Result())
		if err != nil {
			return deflow.Fail[Out](err)
		}

		branch := onFalse
		if take {
			branch = onTrue
		}

		out, err := branch(ctx, input.Result())
		if err != nil {
			return deflow.Fail[Out](err)
		}
		return deflow.Success(out)
	})
}

// Recover converts failure back to success via onError; success passes
// through untouched. An onError error (or panic) supersedes the original one.
func Recover[T any](ctx context.Context, input deflow.Result[T],
	onError func(ctx context.Context, err error) (T, error)) deflow.Result[T] {

	if input.IsSuccess() {
		return input
	}

	return attempt(func() deflow.Result[T] {
		out, err := onError(ctx, input.Err())
		if err != nil {
			return deflow.Fail[T](err)
		}
		return deflow.Success(out)
	})
}

// Finalize runs the effect on both paths after input settled. An effect
// error overrides the settled state, success or failure alike.
func Finalize[T any](ctx context.Context, input deflow.Result[T],
	effect func(ctx context.Context) error) deflow.Result[T] {

	return attempt(func() deflow.Result[T] {
		if err := effect(ctx); err != nil {
			return deflow.Fail[T](err)
		}
		return input
	})
}

// Fold collapses the chain to a concrete value via success/error handlers.
func Fold[In, Out any](ctx context.Context, input deflow.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onError(ctx, input.Err())
}

// attempt converts a panic inside a step function into a failure, so the
// engine itself never panics on caller code.
func attempt[Out any](op func() deflow.Result[Out]) (res deflow.Result[Out]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = deflow.Fail[Out](deflow.FromPanic(rec))
		}
	}()
	return op()
}
