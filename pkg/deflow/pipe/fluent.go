package pipe

import (
	"context"
	"errors"

	"github.com/nk-zt/deflow/pkg/deflow"
	"github.com/nk-zt/deflow/pkg/deflow/step"
)

// Map chains a same-type transformation. Use the package-level Map to change
// the value type.
func (p Pipeline[T]) Map(onSuccess func(ctx context.Context, t T) T) Pipeline[T] {
	return Map(p, onSuccess)
}

// Try chains a same-type function returning (T, error).
func (p Pipeline[T]) Try(onTryExecute func(ctx context.Context, t T) (T, error)) Pipeline[T] {
	return Try(p, onTryExecute)
}

// If runs onTrue when condition holds; otherwise the original value passes
// through unchanged. A condition error fails the chain.
func (p Pipeline[T]) If(condition func(ctx context.Context, t T) (bool, error),
	onTrue func(ctx context.Context, t T) (T, error)) Pipeline[T] {

	return Pipeline[T]{
		produce: func(ctx context.Context) deflow.Result[T] {
			return step.Branch(ctx, p.produce(ctx), condition, onTrue,
				func(_ context.Context, t T) (T, error) {
					return t, nil
				})
		},
		out: p.out,
	}
}

// Tap runs a side effect on success, passing the original value through. An
// effect error aborts the chain.
func (p Pipeline[T]) Tap(sideEffect func(ctx context.Context, t T) error) Pipeline[T] {
	return Pipeline[T]{
		produce: func(ctx context.Context) deflow.Result[T] {
			return step.Tee(ctx, p.produce(ctx), sideEffect)
		},
		out: p.out,
	}
}

// Log writes the current value to the sink, with an optional label. It never
// fails; failure states pass through untouched.
func (p Pipeline[T]) Log(label ...string) Pipeline[T] {
	msg := ""
	if len(label) > 0 {
		msg = label[0]
	}

	return Pipeline[T]{
		produce: func(ctx context.Context) deflow.Result[T] {
			r := p.produce(ctx)
			if r.IsSuccess() {
				p.sink().Value(msg, r.Result())
			}
			return r
		},
		out: p.out,
	}
}

// Assert fails the chain with errors.New(msg) when the predicate rejects the
// current value.
func (p Pipeline[T]) Assert(predicate func(ctx context.Context, t T) bool,
	msg string) Pipeline[T] {
	return p.AssertWith(predicate, errors.New(msg))
}

// AssertWith fails the chain with err verbatim when the predicate rejects
// the current value.
func (p Pipeline[T]) AssertWith(predicate func(ctx context.Context, t T) bool,
	err error) Pipeline[T] {

	return Pipeline[T]{
		produce: func(ctx context.Context) deflow.Result[T] {
			return step.Validate(ctx, p.produce(ctx), predicate, err)
		},
		out: p.out,
	}
}

// Catch converts failure back to success via onError; on a successful chain
// it is a no-op pass-through. An onError error supersedes the original one.
func (p Pipeline[T]) Catch(onError func(ctx context.Context, err error) (T, error)) Pipeline[T] {
	return Pipeline[T]{
		produce: func(ctx context.Context) deflow.Result[T] {
			return step.Recover(ctx, p.produce(ctx), onError)
		},
		out: p.out,
	}
}

// Finally runs the effect after the preceding step settles, success or
// failure alike, without altering the settled outcome. An effect error
// overrides whatever state preceded it.
func (p Pipeline[T]) Finally(effect func(ctx context.Context) error) Pipeline[T] {
	return Pipeline[T]{
		produce: func(ctx context.Context) deflow.Result[T] {
			return step.Finalize(ctx, p.produce(ctx), effect)
		},
		out: p.out,
	}
}
