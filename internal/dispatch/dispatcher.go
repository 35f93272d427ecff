package dispatch

import (
	"context"
	"time"
)

// Handler is the interface for event handlers.
// This mirrors the eventsystem.Handler interface to avoid circular
// imports.
type Handler[T, R any] interface {
	Handle(ctx context.Context, event T) (R, error)
}

// Result represents the outcome of a single handler execution.
type Result[R any] struct {
	// Value is the handler's return value. Only meaningful when Err is
	// nil and Panicked is false.
	Value R

	// Err is the error returned by the handler, if any.
	Err error

	// Panicked is true if the handler panicked.
	Panicked bool

	// PanicValue is the value passed to panic(), if Panicked is true.
	PanicValue any

	// PanicStack is the stack trace at the point of panic.
	PanicStack []byte

	// Duration is how long the handler took to execute.
	Duration time.Duration
}

// IsSuccess returns true if the handler completed without error or
// panic.
func (r Result[R]) IsSuccess() bool {
	return r.Err == nil && !r.Panicked
}
