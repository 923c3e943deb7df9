package pipe

import (
	"context"

	"github.com/nk-zt/deflow/pkg/deflow"
	"github.com/nk-zt/deflow/pkg/deflow/step"
)

// Map chains a pure transformation to a new value type.
func Map[In, Out any](p Pipeline[In],
	onSuccess func(ctx context.Context, r In) Out) Pipeline[Out] {

	return Pipeline[Out]{
		produce: func(ctx context.Context) deflow.Result[Out] {
			return step.Map(ctx, p.produce(ctx), onSuccess)
		},
		out: p.out,
	}
}

// Try chains a function returning (Out, error); the error becomes failure.
func Try[In, Out any](p Pipeline[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) Pipeline[Out] {

	return Pipeline[Out]{
		produce: func(ctx context.Context) deflow.Result[Out] {
			return step.Try(ctx, p.produce(ctx), onTryExecute)
		},
		out: p.out,
	}
}

// Then chains a function that returns another pipeline. The inner pipeline's
// own outcome is adopted as-is, so failures are never double-wrapped.
func Then[In, Out any](p Pipeline[In],
	onSuccess func(ctx context.Context, r In) Pipeline[Out]) Pipeline[Out] {

	return Pipeline[Out]{
		produce: func(ctx context.Context) deflow.Result[Out] {
			return step.Switch(ctx, p.produce(ctx),
				func(ctx context.Context, r In) deflow.Result[Out] {
					return onSuccess(ctx, r).Result(ctx)
				})
		},
		out: p.out,
	}
}

// IfElse evaluates condition on the current value and runs exactly one of
// onTrue/onFalse. Errors from any of the three functions fail the chain.
func IfElse[In, Out any](p Pipeline[In],
	condition func(ctx context.Context, in In) (bool, error),
	onTrue func(ctx context.Context, r In) (Out, error),
	onFalse func(ctx context.Context, r In) (Out, error)) Pipeline[Out] {

	return Pipeline[Out]{
		produce: func(ctx context.Context) deflow.Result[Out] {
			return step.Branch(ctx, p.produce(ctx), condition, onTrue, onFalse)
		},
		out: p.out,
	}
}
