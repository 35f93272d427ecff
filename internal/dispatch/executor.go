package dispatch

import (
	"context"
	"runtime/debug"
	"time"
)

// Executor handles the actual execution of event handlers with panic
// recovery and timing. There is deliberately no timeout or forced
// cancellation: a handler that never returns blocks its caller, and
// the failure boundary only converts errors and panics into Results.
type Executor[T, R any] struct{}

// NewExecutor creates a new executor.
func NewExecutor[T, R any]() *Executor[T, R] {
	return &Executor[T, R]{}
}

// Execute runs a handler with the given event and returns the result.
// It recovers from panics and captures timing information. A panic or
// error from one handler never propagates to the caller.
func (e *Executor[T, R]) Execute(ctx context.Context, event T, handler Handler[T, R]) (result Result[R]) {
	start := time.Now()

	defer func() {
		result.Duration = time.Since(start)

		if r := recover(); r != nil {
			result.Panicked = true
			result.PanicValue = r
			result.PanicStack = debug.Stack()
		}
	}()

	result.Value, result.Err = handler.Handle(ctx, event)
	return result
}
