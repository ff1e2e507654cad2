package stream

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Turnout drives engine over inputCh with the given number of lines and
// closes the returned channel once every line has stopped. Order is not
// preserved when lines > 1.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan outcome.Outcome[In, error],
	engine Engine[In, Out],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, out outcome.Outcome[Out, error]), lines int) <-chan outcome.Outcome[Out, error] {

	if lines < 1 {
		lines = 1
	}

	out := make(chan outcome.Outcome[Out, error])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go Locomotive(ctx, inputCh, out, engine, handlers, onSuccess, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Run is Turnout without cancellation handlers or callbacks.
func Run[In, Out any](ctx context.Context, inputCh <-chan outcome.Outcome[In, error],
	engine Engine[In, Out], lines int) <-chan outcome.Outcome[Out, error] {
	return Turnout(ctx, inputCh, engine, CancellationHandlers[In, Out]{}, nil, lines)
}

// RunSingle preserves input order.
func RunSingle[In, Out any](ctx context.Context, inputCh <-chan outcome.Outcome[In, error],
	engine Engine[In, Out]) <-chan outcome.Outcome[Out, error] {
	return Run(ctx, inputCh, engine, 1)
}

// RunWorkers is Run with the line count taken from WithWorkerOptions.
func RunWorkers[In, Out any](ctx context.Context, inputCh <-chan outcome.Outcome[In, error],
	engine Engine[In, Out], defaultLines int) <-chan outcome.Outcome[Out, error] {
	return Run(ctx, inputCh, engine, GetWorkerMaxCount(ctx, defaultLines))
}
