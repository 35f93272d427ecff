package eventsystem

import (
	"context"
	"time"
)

// DeliveryMode specifies how a fire delivers events to handlers.
type DeliveryMode int

const (
	// DeliverySync executes handlers inline in the firing goroutine.
	// Results are collected per handler and returned from Fire.
	DeliverySync DeliveryMode = iota

	// DeliveryAsync submits handlers to the shared background worker.
	// Fire returns immediately with pending entries; outcomes are only
	// visible through the worker's log output.
	DeliveryAsync
)

// String returns a human-readable delivery mode name.
func (m DeliveryMode) String() string {
	switch m {
	case DeliverySync:
		return "sync"
	case DeliveryAsync:
		return "async"
	default:
		return "unknown"
	}
}

// Handler is the interface for registered event handlers. T is the
// argument type delivered on each fire and R is the handler's result
// type. Each EventSystem instantiation fixes one concrete signature.
type Handler[T, R any] interface {
	// Handle processes one fired event.
	Handle(ctx context.Context, event T) (R, error)
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc[T, R any] func(ctx context.Context, event T) (R, error)

// Handle implements the Handler interface.
func (f HandlerFunc[T, R]) Handle(ctx context.Context, event T) (R, error) {
	return f(ctx, event)
}

// Outcome classifies one handler's entry in a fire result list.
type Outcome int

const (
	// OutcomeSuccess means the handler returned normally; the result
	// entry carries its return value.
	OutcomeSuccess Outcome = iota

	// OutcomeFailure means the handler returned an error or panicked;
	// the result entry carries a FailureDetail.
	OutcomeFailure

	// OutcomePending means the handler was submitted to the background
	// worker and its outcome is not tracked by the caller.
	OutcomePending
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomePending:
		return "pending"
	default:
		return "unknown"
	}
}

// FailureDetail describes one handler failure. Which fields are
// populated depends on the instance's verbosity configuration: Message
// is always set, Type and Err require error-value retention (the
// default), Stack requires stack capture.
type FailureDetail struct {
	// Type is the dynamic Go type of the error or panic value.
	Type string

	// Message is the error message or formatted panic value.
	Message string

	// Err is the error returned by the handler, or a PanicError when
	// the handler panicked. Nil when error-value retention is off.
	Err error

	// Panicked is true if the failure was a recovered panic rather
	// than a returned error.
	Panicked bool

	// Stack is the stack trace captured at the failure boundary.
	// Nil unless stack capture is enabled.
	Stack []byte
}

// Result is one entry of the list returned by Fire: the outcome of a
// single handler from the fire-time snapshot. The result list has
// exactly one entry per snapshot handler, in snapshot order.
type Result[T, R any] struct {
	// Outcome classifies the entry.
	Outcome Outcome

	// Value is the handler's return value when Outcome is
	// OutcomeSuccess; the zero value otherwise.
	Value R

	// Failure is non-nil exactly when Outcome is OutcomeFailure.
	Failure *FailureDetail

	// Handler is the snapshot entry this result belongs to.
	Handler Handler[T, R]

	// Duration is how long the handler took to execute. Always zero
	// for OutcomePending entries, whose execution the caller does not
	// observe.
	Duration time.Duration
}

// IsSuccess returns true if the handler completed without error.
func (r Result[T, R]) IsSuccess() bool {
	return r.Outcome == OutcomeSuccess
}

// IsFailure returns true if the handler returned an error or panicked.
func (r Result[T, R]) IsFailure() bool {
	return r.Outcome == OutcomeFailure
}

// IsPending returns true if the handler was submitted for background
// execution.
func (r Result[T, R]) IsPending() bool {
	return r.Outcome == OutcomePending
}

// Stats contains per-instance counters accumulated across fires.
type Stats struct {
	// Fires is the total number of Fire calls.
	Fires uint64

	// HandlersExecuted is the number of handlers run synchronously.
	HandlersExecuted uint64

	// HandlerFailures is the number of synchronous handlers that
	// returned an error.
	HandlerFailures uint64

	// HandlerPanics is the number of synchronous handlers that
	// panicked.
	HandlerPanics uint64

	// Submitted is the number of work items handed to the background
	// worker.
	Submitted uint64
}
