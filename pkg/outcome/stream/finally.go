package stream

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// FinallyHandlers map an outcome to a plain value. A failure whose error
// IsCancelled goes to OnCancel when it is set, otherwise to OnError.
type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, err error) Out
	OnCancel  func(ctx context.Context, err error) Out
}

func (h FinallyHandlers[In, Out]) apply(ctx context.Context, in outcome.Outcome[In, error]) Out {
	return solo.Finally(ctx, in, h.OnSuccess, func(ctx context.Context, err error) Out {
		if h.OnCancel != nil && IsCancelled(err) {
			return h.OnCancel(ctx, err)
		}
		return h.OnError(ctx, err)
	})
}

type FinallyCancelHandlers[In, Out any] struct {
	// OnBreak maps an item left unread when ctx ended. When nil, such
	// items are dropped. When set, read the output with FromChanAll.
	OnBreak func(ctx context.Context, in outcome.Outcome[In, error]) Out
}

// Finally collapses every outcome on inputCh into an Out value.
func Finally[In, Out any](ctx context.Context, inputCh <-chan outcome.Outcome[In, error],
	handlers FinallyHandlers[In, Out],
	cancelHandlers FinallyCancelHandlers[In, Out],
	onSuccessResult func(ctx context.Context, out Out)) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				if cancelHandlers.OnBreak != nil {
					CancelRemainingValues(ctx, inputCh, cancelHandlers.OnBreak, out)
				}
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				if ctx.Err() != nil {
					if cancelHandlers.OnBreak != nil && IsProcessRemainingEnabled(ctx, true) {
						out <- cancelHandlers.OnBreak(ctx, in)
						CancelRemainingValues(ctx, inputCh, cancelHandlers.OnBreak, out)
					}
					return
				}

				res := handlers.apply(ctx, in)

				select {
				case <-ctx.Done():
					if cancelHandlers.OnBreak != nil && IsProcessRemainingEnabled(ctx, true) {
						out <- res
						CancelRemainingValues(ctx, inputCh, cancelHandlers.OnBreak, out)
					}
					return
				case out <- res:
					if onSuccessResult != nil {
						onSuccessResult(ctx, res)
					}
				}
			}
		}
	}()

	return out
}
