package pipe

import (
	"context"

	"github.com/nk-zt/deflow/pkg/deflow"
	"github.com/nk-zt/deflow/pkg/deflow/sink"
	"github.com/nk-zt/deflow/pkg/deflow/step"
)

// Pipeline is an immutable, re-runnable description of a chain of steps over
// one eventual value. Chaining never mutates the receiver; it returns a new
// Pipeline whose producer closes over the previous one. Nothing executes
// until Run, RunSafe or RunAndForget is called, and every terminal call
// re-executes the whole chain from its root.
type Pipeline[T any] struct {
	produce func(ctx context.Context) deflow.Result[T]
	out     *sink.Sink
}

// Of creates a pipeline whose producer yields the given value.
func Of[T any](v T) Pipeline[T] {
	return Pipeline[T]{
		produce: func(_ context.Context) deflow.Result[T] {
			return deflow.Success(v)
		},
	}
}

// FromResult creates a pipeline over an already-settled result.
func FromResult[T any](r deflow.Result[T]) Pipeline[T] {
	return Pipeline[T]{
		produce: func(_ context.Context) deflow.Result[T] {
			return r
		},
	}
}

// From creates a pipeline whose producer invokes fn at execution time. An
// error or panic from fn becomes a failure; construction itself runs nothing.
func From[T any](fn func(ctx context.Context) (T, error)) Pipeline[T] {
	return Pipeline[T]{
		produce: func(ctx context.Context) deflow.Result[T] {
			return step.Start(ctx, fn)
		},
	}
}

// WithSink returns a pipeline writing diagnostics to s. Derived pipelines
// inherit the sink.
func (p Pipeline[T]) WithSink(s *sink.Sink) Pipeline[T] {
	return Pipeline[T]{produce: p.produce, out: s}
}

func (p Pipeline[T]) sink() *sink.Sink {
	if p.out != nil {
		return p.out
	}
	return sink.Default()
}

// Result invokes the producer once, executing the chain from its root.
func (p Pipeline[T]) Result(ctx context.Context) deflow.Result[T] {
	return p.produce(ctx)
}

// Run executes the chain and propagates failure as a returned error.
func (p Pipeline[T]) Run(ctx context.Context) (T, error) {
	r := p.produce(ctx)
	if r.IsSuccess() {
		return r.Result(), nil
	}
	var zero T
	return zero, r.Err()
}

// RunSafe executes the chain and captures any failure as a SafeResult.
// It never panics, whatever the chain outcome.
func (p Pipeline[T]) RunSafe(ctx context.Context) deflow.SafeResult[T] {
	v, err := p.Run(ctx)
	if err != nil {
		return deflow.SafeFailure[T](err)
	}
	return deflow.SafeSuccess(v)
}

// RunAndForget starts the chain on its own goroutine, discards the value and
// writes any failure to the sink. No handle is returned.
func (p Pipeline[T]) RunAndForget(ctx context.Context) {
	out := p.sink()
	go func() {
		if _, err := p.Run(ctx); err != nil {
			out.Failure(err)
		}
	}()
}
