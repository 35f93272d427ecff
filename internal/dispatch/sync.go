package dispatch

import (
	"context"
	"sync/atomic"
	"time"
)

// SyncDispatcher executes handlers synchronously in the caller's
// goroutine, with per-handler failure isolation.
type SyncDispatcher[T, R any] struct {
	executor *Executor[T, R]

	// Stats
	dispatched  atomic.Uint64
	succeeded   atomic.Uint64
	failed      atomic.Uint64
	panicked    atomic.Uint64
	totalTimeNs atomic.Int64
}

// NewSyncDispatcher creates a new synchronous dispatcher.
func NewSyncDispatcher[T, R any]() *SyncDispatcher[T, R] {
	return &SyncDispatcher[T, R]{
		executor: NewExecutor[T, R](),
	}
}

// Dispatch executes a handler synchronously with the given event.
// It blocks until the handler completes or panics.
func (d *SyncDispatcher[T, R]) Dispatch(ctx context.Context, event T, handler Handler[T, R]) Result[R] {
	d.dispatched.Add(1)

	result := d.executor.Execute(ctx, event, handler)

	d.totalTimeNs.Add(result.Duration.Nanoseconds())
	switch {
	case result.Panicked:
		d.panicked.Add(1)
	case result.Err != nil:
		d.failed.Add(1)
	default:
		d.succeeded.Add(1)
	}

	return result
}

// DispatchAll executes every handler sequentially and returns one
// result per handler, in order. A failing handler never stops
// iteration over the remaining handlers.
func (d *SyncDispatcher[T, R]) DispatchAll(ctx context.Context, event T, handlers []Handler[T, R]) []Result[R] {
	results := make([]Result[R], len(handlers))
	for i, handler := range handlers {
		results[i] = d.Dispatch(ctx, event, handler)
	}
	return results
}

// Stats returns dispatch statistics.
// Note: Stats are read without a mutex, so values may be slightly
// inconsistent if stats are being updated concurrently.
func (d *SyncDispatcher[T, R]) Stats() SyncDispatcherStats {
	dispatched := d.dispatched.Load()
	totalNs := d.totalTimeNs.Load()

	var avgNs int64
	if dispatched > 0 {
		avgNs = totalNs / int64(dispatched)
	}

	return SyncDispatcherStats{
		Dispatched:    dispatched,
		Succeeded:     d.succeeded.Load(),
		Failed:        d.failed.Load(),
		Panicked:      d.panicked.Load(),
		TotalDuration: time.Duration(totalNs),
		AvgDuration:   time.Duration(avgNs),
	}
}

// SyncDispatcherStats contains statistics for a sync dispatcher.
type SyncDispatcherStats struct {
	// Dispatched is the total number of dispatch calls.
	Dispatched uint64

	// Succeeded is the number of successful handler executions.
	Succeeded uint64

	// Failed is the number of handlers that returned errors.
	Failed uint64

	// Panicked is the number of handlers that panicked.
	Panicked uint64

	// TotalDuration is the cumulative time spent in handlers.
	TotalDuration time.Duration

	// AvgDuration is the average handler execution time.
	AvgDuration time.Duration
}
