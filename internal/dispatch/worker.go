package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"
)

// Task is one unit of background work: a type-erased handler
// invocation built at fire time. It is consumed exactly once by the
// worker and discarded after execution regardless of outcome.
type Task struct {
	// Label identifies the handler in worker log output.
	Label string

	// Run invokes the handler. Panics escape to the worker's recovery
	// boundary.
	Run func(ctx context.Context) (any, error)
}

// Worker is the process-wide background executor shared by every
// asynchronous event system instance. It drains an unbounded FIFO
// queue on a single goroutine and stays alive for as long as its
// reference count is above zero.
//
// Outcomes are not reported back to submitters: failures are logged
// and dropped. That is the asynchronous mode contract, not a gap.
type Worker struct {
	mu   sync.Mutex
	cond *sync.Cond
	work *queue.Queue
	refs int
	dead bool

	logger *slog.Logger

	// Stats
	submitted atomic.Uint64
	processed atomic.Uint64
	failed    atomic.Uint64
	panicked  atomic.Uint64
}

var (
	sharedMu sync.Mutex
	shared   *Worker
)

// AcquireShared returns the shared worker with its reference count
// incremented, starting a fresh one when none exists or the previous
// one has already terminated. Every AcquireShared must be balanced by
// exactly one Release; an unreleased reference keeps the worker
// goroutine alive for the life of the process.
//
// The logger only takes effect when this call creates the worker.
func AcquireShared(logger *slog.Logger) *Worker {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if shared != nil && shared.acquire() {
		logger.Debug("joining existing background worker", "refs", shared.Refs())
		return shared
	}

	shared = newWorker(logger)
	logger.Debug("started background worker")
	return shared
}

// SharedWorkerRunning reports whether a shared worker goroutine is
// currently alive. Intended for diagnostics and leak checks.
func SharedWorkerRunning() bool {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	return shared != nil && shared.Running()
}

func newWorker(logger *slog.Logger) *Worker {
	w := &Worker{
		work:   queue.New(),
		refs:   1,
		logger: logger,
	}
	w.cond = sync.NewCond(&w.mu)
	go w.loop()
	return w
}

// acquire increments the reference count. It fails when the worker
// loop has already terminated; the caller must then start a
// replacement.
func (w *Worker) acquire() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.dead {
		return false
	}
	w.refs++
	return true
}

// Release decrements the reference count. When it reaches zero the
// worker loop terminates; work still queued at that point is
// discarded.
func (w *Worker) Release() {
	w.mu.Lock()
	if w.refs > 0 {
		w.refs--
	}
	if w.refs == 0 {
		w.cond.Broadcast()
	}
	w.mu.Unlock()
}

// Submit enqueues a task. The queue is unbounded, so Submit never
// blocks on capacity and never fails. The caller must hold a live
// reference; tasks submitted to a terminated worker are never run.
func (w *Worker) Submit(t Task) {
	w.mu.Lock()
	w.work.Add(t)
	w.cond.Signal()
	w.mu.Unlock()

	w.submitted.Add(1)
}

// Running reports whether the worker loop is still alive.
func (w *Worker) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return !w.dead
}

// Refs returns the current reference count.
func (w *Worker) Refs() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.refs
}

// QueueDepth returns the number of tasks waiting in the queue.
func (w *Worker) QueueDepth() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.work.Length()
}

// loop consumes the queue one task at a time. It sleeps on the
// condition variable while idle (signaled on submit and on
// release-to-zero) and exits once the reference count reaches zero,
// so shutdown latency is one broadcast rather than a poll interval.
func (w *Worker) loop() {
	w.mu.Lock()
	for {
		for w.work.Length() == 0 && w.refs > 0 {
			w.cond.Wait()
		}
		if w.refs == 0 {
			if n := w.work.Length(); n > 0 {
				w.logger.Warn("background worker exiting with unprocessed work", "discarded", n)
			}
			w.dead = true
			w.mu.Unlock()
			w.logger.Debug("background worker stopped")
			return
		}

		task := w.work.Remove().(Task)
		w.mu.Unlock()
		w.execute(task)
		w.mu.Lock()
	}
}

// execute runs a single task. Errors and panics are logged and
// dropped; nothing a handler does may take down the worker loop.
func (w *Worker) execute(task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.panicked.Add(1)
			w.logger.Error("panic in background handler",
				"handler", task.Label,
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
		}
		w.processed.Add(1)
	}()

	value, err := task.Run(context.Background())
	if err != nil {
		w.failed.Add(1)
		w.logger.Error("background handler failed", "handler", task.Label, "error", err)
		return
	}
	w.logger.Debug("background handler done", "handler", task.Label, "result", value)
}

// Stats returns worker statistics.
func (w *Worker) Stats() WorkerStats {
	return WorkerStats{
		Submitted:  w.submitted.Load(),
		Processed:  w.processed.Load(),
		Failed:     w.failed.Load(),
		Panicked:   w.panicked.Load(),
		QueueDepth: w.QueueDepth(),
	}
}

// WorkerStats contains statistics for the background worker.
type WorkerStats struct {
	// Submitted is the total number of tasks enqueued.
	Submitted uint64

	// Processed is the number of tasks that have been executed.
	Processed uint64

	// Failed is the number of tasks whose handler returned an error.
	Failed uint64

	// Panicked is the number of tasks whose handler panicked.
	Panicked uint64

	// QueueDepth is the current number of tasks waiting in the queue.
	QueueDepth int
}
