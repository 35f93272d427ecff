// Package dispatch provides the execution machinery behind the event
// system facade.
//
// # Components
//
//   - Executor: runs a single handler with panic recovery and timing.
//   - SyncDispatcher: executes handlers sequentially in the caller's
//     goroutine with per-handler failure isolation.
//   - Worker: the process-wide background executor shared by all
//     asynchronous instances, reference-counted and backed by an
//     unbounded FIFO queue.
//
// # Failure Isolation
//
// The executor recovers from handler panics and converts them, along
// with returned errors, into Result values. A misbehaving handler can
// block its caller (there is no timeout or forced cancellation) but it
// can never abort the surrounding dispatch or crash the worker loop.
//
// # Worker Lifecycle
//
// The shared worker is created lazily by the first AcquireShared call
// and kept alive by its reference count. Each asynchronous instance
// acquires one reference at construction and releases it on Close.
// When the count reaches zero the loop terminates; a later acquire
// detects the dead worker and starts a replacement.
package dispatch
