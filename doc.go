// Package eventsystem provides a minimal in-process publish mechanism:
// an ordered registry of handlers that a single Fire call invokes
// together, either synchronously in the caller's goroutine or
// asynchronously on a shared background worker.
//
// # Architecture
//
//	┌─────────────────────────────────────────────┐
//	│              EventSystem[T, R]               │
//	│  - per-instance configuration                │
//	│  - result assembly, fire duration            │
//	└─────────────────────────────────────────────┘
//	          │                         │
//	          ▼                         ▼
//	┌─────────────────┐      ┌──────────────────────┐
//	│    Registry     │      │  internal/dispatch    │
//	│  - ordered list │      │  - SyncDispatcher     │
//	│  - snapshots    │      │  - shared Worker      │
//	└─────────────────┘      └──────────────────────┘
//
// # Delivery Modes
//
// Synchronous (the default): handlers run inline, one at a time, in
// registration order. Each handler executes inside a failure boundary,
// so an error or panic becomes an OutcomeFailure entry in the returned
// result list and the remaining handlers still run. There is no
// timeout: a handler that never returns blocks the caller, which is
// the deliberate tradeoff for never having to kill a handler that
// holds resources.
//
// Asynchronous: Fire submits one work item per registered handler to a
// worker shared by every asynchronous instance in the process, then
// returns immediately with one OutcomePending entry per handler.
// Outcomes are not reported back; failures appear in the worker's log
// output only.
//
// # Worker Lifecycle
//
// The shared worker is reference counted. Constructing an asynchronous
// instance acquires one reference (creating or reviving the worker as
// needed) and Close releases it; the worker goroutine exits when the
// count reaches zero. An asynchronous instance that is never closed
// leaks the worker for the life of the process.
//
// # Usage
//
//	es := eventsystem.New[string, int]()
//	es.Handle(eventsystem.HandlerFunc[string, int](
//		func(ctx context.Context, msg string) (int, error) {
//			return len(msg), nil
//		},
//	))
//	results := es.Fire(context.Background(), "hello")
//	for _, r := range results {
//		if r.IsSuccess() {
//			fmt.Println(r.Value)
//		}
//	}
package eventsystem
