package stream

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// lift turns a synchronous step into an Engine. The step is skipped, and
// onCancel notified, when ctx has already ended.
func lift[In, Out any](step func(ctx context.Context, input outcome.Outcome[In, error]) outcome.Outcome[Out, error],
	onCancel func(ctx context.Context, in outcome.Outcome[In, error])) Engine[In, Out] {

	return func(ctx context.Context, input outcome.Outcome[In, error]) <-chan outcome.Outcome[Out, error] {
		out := make(chan outcome.Outcome[Out, error], 1)

		go func() {
			defer close(out)

			if ctx.Err() != nil {
				if onCancel != nil {
					onCancel(ctx, input)
				}
				return
			}
			out <- step(ctx, input)
		}()

		return out
	}
}

func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string),
	onCancel func(ctx context.Context, in outcome.Outcome[T, error])) Engine[T, T] {
	return lift(func(ctx context.Context, input outcome.Outcome[T, error]) outcome.Outcome[T, error] {
		return solo.AndValidate(ctx, input, validate)
	}, onCancel)
}

func Switch[In, Out any](switchOnSuccess func(ctx context.Context, r In) outcome.Outcome[Out, error],
	onCancel func(ctx context.Context, in outcome.Outcome[In, error])) Engine[In, Out] {
	return lift(func(ctx context.Context, input outcome.Outcome[In, error]) outcome.Outcome[Out, error] {
		return solo.Switch(ctx, input, switchOnSuccess)
	}, onCancel)
}

func Map[In, Out any](mapOnSuccess func(ctx context.Context, r In) Out,
	onCancel func(ctx context.Context, in outcome.Outcome[In, error])) Engine[In, Out] {
	return lift(func(ctx context.Context, input outcome.Outcome[In, error]) outcome.Outcome[Out, error] {
		return solo.Map(ctx, input, mapOnSuccess)
	}, onCancel)
}

func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error),
	onCancel func(ctx context.Context, in outcome.Outcome[In, error])) Engine[In, Out] {
	return lift(func(ctx context.Context, input outcome.Outcome[In, error]) outcome.Outcome[Out, error] {
		return solo.Try(ctx, input, onTryExecute)
	}, onCancel)
}

func Tee[T any](sideEffect func(ctx context.Context, r outcome.Outcome[T, error]),
	onCancel func(ctx context.Context, in outcome.Outcome[T, error])) Engine[T, T] {
	return lift(func(ctx context.Context, input outcome.Outcome[T, error]) outcome.Outcome[T, error] {
		return solo.Tee(ctx, input, sideEffect)
	}, onCancel)
}

func DoubleTee[T any](sideEffect func(ctx context.Context, r T),
	sideEffectOnError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, in outcome.Outcome[T, error])) Engine[T, T] {
	return lift(func(ctx context.Context, input outcome.Outcome[T, error]) outcome.Outcome[T, error] {
		return solo.DoubleTee(ctx, input, sideEffect, sideEffectOnError)
	}, onCancel)
}
