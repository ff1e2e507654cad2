package stream

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

var ErrCancelled = errors.New("operation cancelled")

// IsCancelled reports whether err marks an item abandoned because its
// context ended.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled) || outcome.IsCancellationError(err)
}

func cancelFrom[In, Out any](in outcome.Outcome[In, error]) outcome.Outcome[Out, error] {
	if in.IsFailure() && IsCancelled(in.Error()) {
		return outcome.Failure[Out](in.Error())
	}
	return outcome.Failure[Out](ErrCancelled)
}

// CancelRemainingOutcomes drains inputCh into outCh as cancelled failures,
// keeping any cancellation error an item already carries. Usable as
// CancellationHandlers.OnCancel.
func CancelRemainingOutcomes[In, Out any](ctx context.Context,
	inputCh <-chan outcome.Outcome[In, error], outCh chan<- outcome.Outcome[Out, error]) {

	if !IsProcessRemainingEnabled(ctx, true) {
		return
	}

	for in := range inputCh {
		outCh <- cancelFrom[In, Out](in)
	}
}

// CancelRemainingOutcome is CancelRemainingOutcomes for one item. Usable as
// CancellationHandlers.OnCancelUnprocessed.
func CancelRemainingOutcome[In, Out any](ctx context.Context, in outcome.Outcome[In, error],
	outCh chan<- outcome.Outcome[Out, error]) {

	if IsProcessRemainingEnabled(ctx, true) {
		outCh <- cancelFrom[In, Out](in)
	}
}

// KeepProcessed forwards an item that finished just as ctx ended. Usable as
// CancellationHandlers.OnCancelProcessed.
func KeepProcessed[In, Out any](ctx context.Context, _ outcome.Outcome[In, error],
	processed outcome.Outcome[Out, error], outCh chan<- outcome.Outcome[Out, error]) {

	if IsProcessRemainingEnabled(ctx, true) {
		outCh <- processed
	}
}

// CancelHandlers wires all three cancellation hooks so that every item
// read from the input channel produces exactly one output item. The hooks
// send without watching ctx, so the output must be read until it closes,
// as FromChanAll does; otherwise the lines block on send.
func CancelHandlers[In, Out any]() CancellationHandlers[In, Out] {
	return CancellationHandlers[In, Out]{
		OnCancel:            CancelRemainingOutcomes[In, Out],
		OnCancelUnprocessed: CancelRemainingOutcome[In, Out],
		OnCancelProcessed:   KeepProcessed[In, Out],
	}
}

// CancelRemainingValues maps every item left on inputCh with brokenF. Like
// the other drains it sends without watching ctx.
func CancelRemainingValues[In, Out any](ctx context.Context, inputCh <-chan outcome.Outcome[In, error],
	brokenF func(ctx context.Context, in outcome.Outcome[In, error]) Out, outCh chan<- Out) {

	if !IsProcessRemainingEnabled(ctx, true) {
		return
	}

	for in := range inputCh {
		outCh <- brokenF(ctx, in)
	}
}
