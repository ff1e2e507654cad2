package stream

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Engine processes one outcome. It delivers at most one outcome on the
// returned channel and closes it; closing without a value means the item
// was abandoned because ctx ended.
type Engine[In, Out any] func(ctx context.Context, input outcome.Outcome[In, error]) <-chan outcome.Outcome[Out, error]

type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan outcome.Outcome[In, error], outCh chan<- outcome.Outcome[Out, error])
	OnCancelUnprocessed func(ctx context.Context, unprocessed outcome.Outcome[In, error], outCh chan<- outcome.Outcome[Out, error])
	OnCancelProcessed   func(ctx context.Context, in outcome.Outcome[In, error], processed outcome.Outcome[Out, error], outCh chan<- outcome.Outcome[Out, error])
}

// Locomotive is one worker line: it pulls from inputCh, runs engine and
// pushes to outCh until inputCh closes or ctx ends.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan outcome.Outcome[In, error], outCh chan<- outcome.Outcome[Out, error],
	engine Engine[In, Out],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, out outcome.Outcome[Out, error]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				log.Debugw("line stopped before processing", "id", in.ID())
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					log.Debugw("engine abandoned item", "id", in.ID())
					if handlers.OnCancelUnprocessed != nil {
						handlers.OnCancelUnprocessed(ctx, in, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				}

				select {
				case <-ctx.Done():
					log.Debugw("line stopped after processing", "id", in.ID())
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, pr, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				case outCh <- pr:
					if onSuccess != nil {
						onSuccess(ctx, pr)
					}
				}
			}
		}
	}
}
