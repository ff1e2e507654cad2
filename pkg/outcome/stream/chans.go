package stream

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

type ToChanHandlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnSuccess   func(ctx context.Context, input T)
	OnBreak     func(ctx context.Context, rest []T)
}

func ToChanMany[T any](ctx context.Context, values []T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func ToChan[T any](ctx context.Context, value T) <-chan T {
	return ToChanMany(ctx, []T{value})
}

// ToChanManyOutcomesWithHandlers wraps each value in a success and sends it
// on the returned channel until ctx ends.
func ToChanManyOutcomesWithHandlers[T any](ctx context.Context, handlers ToChanHandlers[T],
	values []T) <-chan outcome.Outcome[T, error] {

	in := make(chan outcome.Outcome[T, error])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- outcome.Success[error](v):
				if handlers.OnSuccess != nil {
					handlers.OnSuccess(ctx, v)
				}
			case <-ctx.Done():
				log.Debugw("source stopped", "sent", i, "rest", len(values)-i)
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

func ToChanManyOutcomes[T any](ctx context.Context, values []T) <-chan outcome.Outcome[T, error] {
	return ToChanManyOutcomesWithHandlers(ctx, ToChanHandlers[T]{}, values)
}

// FromChanMany collects everything sent on out until it is closed or ctx
// ends. Items that cancellation handlers emit after ctx ends are not
// collected; use FromChanAll for those pipelines.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// FromChanAll collects everything sent on out until it is closed, ignoring
// ctx. It pairs with CancelHandlers and FinallyCancelHandlers, whose drains
// block on send until someone reads.
func FromChanAll[T any](out <-chan T) []T {
	res := make([]T, 0)
	for v := range out {
		res = append(res, v)
	}
	return res
}

func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}
