package eventsystem

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/stefanbraun-private/visitoolkit-eventsystem/internal/dispatch"
)

// EventSystem is the public facade: an ordered registry of handlers
// that a fire invokes together, either inline in the firing goroutine
// (DeliverySync) or on the shared background worker (DeliveryAsync).
//
// An asynchronous instance holds one reference on the shared worker
// from construction until Close. Forgetting to Close leaks the worker
// goroutine for the life of the process.
type EventSystem[T, R any] struct {
	registry   *Registry[T, R]
	dispatcher *dispatch.SyncDispatcher[T, R]

	// worker is nil for synchronous instances.
	worker *dispatch.Worker

	cfg    config
	closed atomic.Bool

	lastFireNs atomic.Int64

	// Stats
	fires     atomic.Uint64
	submitted atomic.Uint64
}

// New creates an event system with the given options. The default is
// synchronous delivery with error values retained and no stack
// capture. Constructing an asynchronous instance ensures a live shared
// worker exists and increments its reference count exactly once.
func New[T, R any](opts ...Option) *EventSystem[T, R] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	es := &EventSystem[T, R]{
		registry:   NewRegistry[T, R](),
		dispatcher: dispatch.NewSyncDispatcher[T, R](),
		cfg:        cfg,
	}
	if cfg.mode == DeliveryAsync {
		es.worker = dispatch.AcquireShared(cfg.logger)
	}
	return es
}

// Handle registers a handler and returns the instance for chaining.
// Registration order defines invocation order, and registering the
// same handler again invokes it once per registration. A nil handler
// is ignored with a logged warning, since the chainable signature has
// no room for an error.
func (es *EventSystem[T, R]) Handle(h Handler[T, R]) *EventSystem[T, R] {
	if h == nil {
		es.cfg.logger.Warn("ignoring nil handler registration", "error", ErrNilHandler)
		return es
	}
	es.registry.Add(h)
	return es
}

// Unhandle removes the first registration matching h. Returns
// ErrNotRegistered when the handler is not registered.
func (es *EventSystem[T, R]) Unhandle(h Handler[T, R]) error {
	return es.registry.Remove(h)
}

// HandlerCount returns the number of live registrations.
func (es *EventSystem[T, R]) HandlerCount() int {
	return es.registry.Len()
}

// Clear discards all registered handlers.
func (es *EventSystem[T, R]) Clear() {
	es.registry.Clear()
}

// Fire invokes every currently-registered handler with the given
// event and returns one result per handler, in registration order.
//
// Synchronous instances execute each handler inline inside a failure
// boundary: a handler error or panic becomes an OutcomeFailure entry
// and never stops the remaining handlers. Asynchronous instances
// submit one work item per handler to the shared worker and return
// immediately with all-OutcomePending entries; outcomes are only
// visible in the worker's log output.
//
// Handlers registered or removed by a running handler do not affect
// the in-flight snapshot; they take effect on the next fire. An empty
// registry yields a nil result list.
func (es *EventSystem[T, R]) Fire(ctx context.Context, event T) []Result[T, R] {
	start := time.Now()
	defer func() {
		es.lastFireNs.Store(time.Since(start).Nanoseconds())
	}()
	es.fires.Add(1)

	if es.worker != nil && es.closed.Load() {
		es.cfg.logger.Warn("fire on closed event system dropped")
		return nil
	}

	snapshot := es.registry.Snapshot()
	if len(snapshot) == 0 {
		return nil
	}

	if es.worker != nil {
		return es.fireAsync(snapshot, event)
	}
	return es.fireSync(ctx, snapshot, event)
}

func (es *EventSystem[T, R]) fireSync(ctx context.Context, snapshot []Handler[T, R], event T) []Result[T, R] {
	handlers := make([]dispatch.Handler[T, R], len(snapshot))
	for i, h := range snapshot {
		handlers[i] = h
	}

	results := make([]Result[T, R], len(snapshot))
	for i, dr := range es.dispatcher.DispatchAll(ctx, event, handlers) {
		if dr.IsSuccess() {
			results[i] = Result[T, R]{Outcome: OutcomeSuccess, Value: dr.Value, Handler: snapshot[i], Duration: dr.Duration}
		} else {
			results[i] = Result[T, R]{Outcome: OutcomeFailure, Failure: es.failureDetail(dr), Handler: snapshot[i], Duration: dr.Duration}
		}
	}
	return results
}

func (es *EventSystem[T, R]) fireAsync(snapshot []Handler[T, R], event T) []Result[T, R] {
	results := make([]Result[T, R], len(snapshot))
	for i, h := range snapshot {
		handler := h
		es.worker.Submit(dispatch.Task{
			Label: fmt.Sprintf("%T", handler),
			Run: func(ctx context.Context) (any, error) {
				return handler.Handle(ctx, event)
			},
		})
		es.submitted.Add(1)
		results[i] = Result[T, R]{Outcome: OutcomePending, Handler: h}
	}
	return results
}

// failureDetail converts a failed dispatch result into a
// FailureDetail trimmed to the instance's verbosity configuration.
func (es *EventSystem[T, R]) failureDetail(dr dispatch.Result[R]) *FailureDetail {
	var err error
	var stack []byte
	if dr.Panicked {
		err = &PanicError{Value: dr.PanicValue, Stack: dr.PanicStack}
		stack = dr.PanicStack
	} else {
		err = dr.Err
		if es.cfg.stackTrace {
			// Returned errors carry no stack of their own; record the
			// failure boundary instead.
			stack = debug.Stack()
		}
	}

	d := &FailureDetail{
		Message:  err.Error(),
		Panicked: dr.Panicked,
	}
	if es.cfg.errorValue {
		if dr.Panicked {
			d.Type = fmt.Sprintf("%T", dr.PanicValue)
		} else {
			d.Type = fmt.Sprintf("%T", dr.Err)
		}
		d.Err = err
	}
	if es.cfg.stackTrace {
		d.Stack = stack
	}
	return d
}

// LastFireDuration returns the duration of the most recent Fire call,
// in both delivery modes. Intended for monitoring long-running handler
// chains.
func (es *EventSystem[T, R]) LastFireDuration() time.Duration {
	return time.Duration(es.lastFireNs.Load())
}

// Stats returns per-instance counters accumulated across fires.
func (es *EventSystem[T, R]) Stats() Stats {
	ds := es.dispatcher.Stats()
	return Stats{
		Fires:            es.fires.Load(),
		HandlersExecuted: ds.Dispatched,
		HandlerFailures:  ds.Failed,
		HandlerPanics:    ds.Panicked,
		Submitted:        es.submitted.Load(),
	}
}

// Close releases this instance's reference on the shared worker, if
// it holds one. Every asynchronous instance must be closed exactly
// once; the worker terminates when the last reference is released.
// Calling Close again returns ErrClosed.
func (es *EventSystem[T, R]) Close() error {
	if es.closed.Swap(true) {
		return ErrClosed
	}
	if es.worker != nil {
		es.worker.Release()
	}
	return nil
}

// String returns a diagnostic representation of the instance.
func (es *EventSystem[T, R]) String() string {
	return fmt.Sprintf("EventSystem(mode=%s, handlers=%d)", es.cfg.mode, es.registry.Len())
}
