package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Chain wraps an outcome.Outcome with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx context.Context
	res outcome.Outcome[T, E]
}

func Start[T, E any](ctx context.Context, r outcome.Outcome[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

func FromValue[E, T any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, outcome.Success[E](v))
}

func (c Chain[T, E]) Result() outcome.Outcome[T, E] {
	return c.res
}

func (c Chain[T, E]) Context() context.Context {
	return c.ctx
}

// Then composes functions that already return an Outcome of the same type
func (c Chain[T, E]) Then(onSuccess func(ctx context.Context, t T) outcome.Outcome[T, E]) Chain[T, E] {
	return To(c, onSuccess)
}

// Map transforms the successful value to a new value of the same type
func (c Chain[T, E]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T, E] {
	return MapTo(c, onSuccess)
}

// Recover gives a failure a chance to turn back into a success
func (c Chain[T, E]) Recover(onFailure func(ctx context.Context, err E) outcome.Outcome[T, E]) Chain[T, E] {
	return OrElse(c, onFailure)
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, E)) Chain[T, E] {
	c.res.Inspect(
		func(t T) {
			if onSuccess != nil {
				onSuccess(c.ctx, t)
			}
		},
		func(err E) {
			if onFailure != nil {
				onFailure(c.ctx, err)
			}
		})
	return c
}

func (c Chain[T, E]) RepeatUntil(onSuccess func(ctx context.Context, t T) outcome.Outcome[T, E],
	until func(ctx context.Context, t T) bool) Chain[T, E] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || !until(c.ctx, c.res.Value()) {
			return c
		}
	}
}

func (c Chain[T, E]) While(onSuccess func(ctx context.Context, t T) outcome.Outcome[T, E],
	while func(ctx context.Context, t T) bool) Chain[T, E] {

	for c.res.IsSuccess() && while(c.ctx, c.res.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns the first successful chain among c and alternatives, or the
// first failed one when none succeeded.
func (c Chain[T, E]) Or(alternatives ...Chain[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	for _, ch := range alternatives {
		if ch.res.IsSuccess() {
			return ch
		}
	}
	return c
}

// And returns the first failed chain among c and required, or the last one
// when all succeeded.
func (c Chain[T, E]) And(required ...Chain[T, E]) Chain[T, E] {
	last := c
	for _, ch := range append([]Chain[T, E]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// To switches the chain to a new value type via a function returning an
// Outcome.
func To[T, U, E any](c Chain[T, E], onSuccess func(ctx context.Context, t T) outcome.Outcome[U, E]) Chain[U, E] {
	return Chain[U, E]{ctx: c.ctx, res: solo.Switch(c.ctx, c.res, onSuccess)}
}

// MapTo chains a pure transformation function
func MapTo[T, U, E any](c Chain[T, E], onSuccess func(ctx context.Context, t T) U) Chain[U, E] {
	return Chain[U, E]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

func MapError[T, E, F any](c Chain[T, E], onFailure func(ctx context.Context, err E) F) Chain[T, F] {
	return Chain[T, F]{ctx: c.ctx, res: solo.MapError(c.ctx, c.res, onFailure)}
}

func OrElse[T, E, F any](c Chain[T, E], onFailure func(ctx context.Context, err E) outcome.Outcome[T, F]) Chain[T, F] {
	return Chain[T, F]{ctx: c.ctx, res: solo.Recover(c.ctx, c.res, onFailure)}
}

// ThenTry chains a function that returns (U, error), like a repository call
func ThenTry[T, U any](c Chain[T, error], tryOnSuccess func(ctx context.Context, t T) (U, error)) Chain[U, error] {
	return Chain[U, error]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, tryOnSuccess)}
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, R, E any](c Chain[T, E], onSuccess func(context.Context, T) R, onFailure func(context.Context, E) R) R {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}
