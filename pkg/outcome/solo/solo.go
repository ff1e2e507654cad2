package solo

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

func Succeed[E, T any](input T) outcome.Outcome[T, E] {
	return outcome.Success[E](input)
}

func Fail[T, E any](err E) outcome.Outcome[T, E] {
	return outcome.Failure[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) outcome.Outcome[T, error] {
	return AndValidate(ctx, Succeed[error](input), validate)
}

func AndValidate[T any](ctx context.Context, input outcome.Outcome[T, error],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) outcome.Outcome[T, error] {

	if input.IsSuccess() {
		if isValid, errMsg := validate(ctx, input.Value()); !isValid {
			return outcome.Failure[T](errors.New(errMsg))
		}
	}
	return input
}

// ValidateAll runs every validator against input and joins the errors of
// those that fail. With breakOnError it stops at the first failing one.
func ValidateAll[T any](
	ctx context.Context,
	input outcome.Outcome[T, error],
	breakOnError bool, // exit on first error
	validators ...func(ctx context.Context, in outcome.Outcome[T, error]) outcome.Outcome[T, error]) outcome.Outcome[T, error] {

	if input.IsFailure() {
		return input
	}

	var errs []error
	for _, validate := range validators {
		if ctx.Err() != nil {
			break
		}

		if current := validate(ctx, input); current.IsFailure() {
			errs = append(errs, outcome.GetErrors(current.Error())...)
			if breakOnError {
				break
			}
		}
	}

	if len(errs) == 0 {
		return input
	}
	return outcome.Failure[T](errors.Join(errs...))
}

func Switch[In, Out, E any](ctx context.Context,
	input outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, r In) outcome.Outcome[Out, E]) outcome.Outcome[Out, E] {

	return outcome.AndThen(input, func(r In) outcome.Outcome[Out, E] {
		return onSuccess(ctx, r)
	})
}

func Map[In, Out, E any](ctx context.Context,
	input outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, r In) Out) outcome.Outcome[Out, E] {

	return outcome.Transform(input, func(r In) Out {
		return onSuccess(ctx, r)
	})
}

func MapError[T, E, F any](ctx context.Context,
	input outcome.Outcome[T, E],
	onFailure func(ctx context.Context, err E) F) outcome.Outcome[T, F] {

	return outcome.TransformError(input, func(err E) F {
		return onFailure(ctx, err)
	})
}

func Recover[T, E, F any](ctx context.Context,
	input outcome.Outcome[T, E],
	onFailure func(ctx context.Context, err E) outcome.Outcome[T, F]) outcome.Outcome[T, F] {

	return outcome.OrElse(input, func(err E) outcome.Outcome[T, F] {
		return onFailure(ctx, err)
	})
}

func Tee[T, E any](ctx context.Context,
	input outcome.Outcome[T, E],
	onSuccess func(ctx context.Context, r outcome.Outcome[T, E])) outcome.Outcome[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T, E any](ctx context.Context,
	input outcome.Outcome[T, E],
	condition func(ctx context.Context, r outcome.Outcome[T, E]) bool,
	onSuccessAndCondition func(ctx context.Context, r outcome.Outcome[T, E])) outcome.Outcome[T, E] {

	if input.IsSuccess() && condition(ctx, input) {
		onSuccessAndCondition(ctx, input)
	}

	return input
}

// DoubleTee calls onSuccess or onError for its side effects and returns
// input. Either callback may be nil.
func DoubleTee[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err E)) outcome.Outcome[T, E] {

	var ok func(T)
	if onSuccess != nil {
		ok = func(r T) { onSuccess(ctx, r) }
	}
	var fail func(E)
	if onError != nil {
		fail = func(err E) { onError(ctx, err) }
	}
	return input.Inspect(ok, fail)
}

// DoubleMap maps a success like Map and lets onError observe a failure,
// which is passed on re-typed.
func DoubleMap[In, Out, E any](ctx context.Context, input outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err E)) outcome.Outcome[Out, E] {

	if input.IsFailure() && onError != nil {
		onError(ctx, input.Error())
	}
	return Map(ctx, input, onSuccess)
}

func Try[In, Out any](ctx context.Context, input outcome.Outcome[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) outcome.Outcome[Out, error] {

	return outcome.AndThen(input, func(r In) outcome.Outcome[Out, error] {
		return outcome.FromTuple(onTryExecute(ctx, r))
	})
}

func FailOnError[T any](ctx context.Context, input outcome.Outcome[T, error],
	maybeErr func(ctx context.Context, in T) error) outcome.Outcome[T, error] {

	if input.IsSuccess() {
		if err := maybeErr(ctx, input.Value()); err != nil {
			return outcome.Failure[T](err)
		}
	}
	return input
}

func Finally[In, Out, E any](ctx context.Context, input outcome.Outcome[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err E) Out) Out {

	return outcome.Match(input,
		func(r In) Out { return onSuccess(ctx, r) },
		func(err E) Out { return onError(ctx, err) })
}

// Join feeds input through inputsF in order, passing each step's outcome to
// concat. It stops early on a cancelled ctx, or on the first failure when
// breakOnError is set.
func Join[T, E any](ctx context.Context,
	input outcome.Outcome[T, E],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current outcome.Outcome[T, E]) outcome.Outcome[T, E],
	inputsF ...func(ctx context.Context, in outcome.Outcome[T, E]) outcome.Outcome[T, E]) outcome.Outcome[T, E] {

	if len(inputsF) == 0 || concat == nil || ctx.Err() != nil {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if ctx.Err() != nil {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if ctx.Err() != nil {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			}
			finalResult = nextRes
		}
	}
	return finalResult
}
