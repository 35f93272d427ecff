package eventsystem

import (
	"errors"
	"fmt"
)

// Sentinel errors for the event system.
var (
	// ErrNotRegistered is returned by Unhandle when the handler is not
	// registered on this instance.
	ErrNotRegistered = errors.New("handler is not registered")

	// ErrClosed is returned when Close is called more than once.
	ErrClosed = errors.New("event system is closed")

	// ErrNilHandler is logged when Handle is called with a nil
	// handler; the chainable signature has no room to return it.
	ErrNilHandler = errors.New("handler cannot be nil")

	// ErrHandlerPanic is the sentinel matched by errors.Is against a
	// PanicError.
	ErrHandlerPanic = errors.New("handler panicked")
)

// PanicError wraps a recovered panic value as an error so it can flow
// through a FailureDetail like an ordinary handler error.
type PanicError struct {
	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace at the time of the panic.
	Stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("handler panicked: %v", e.Value)
}

// Is allows errors.Is to match PanicError with ErrHandlerPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrHandlerPanic
}
