package eventsystem

import (
	"reflect"
	"sync"
)

// Registry is an ordered collection of handlers. Registration order
// defines invocation order, and the same handler may be registered
// multiple times (it is invoked once per registration).
// It is thread-safe for concurrent access.
type Registry[T, R any] struct {
	mu       sync.RWMutex
	handlers []Handler[T, R]
}

// NewRegistry creates an empty handler registry.
func NewRegistry[T, R any]() *Registry[T, R] {
	return &Registry[T, R]{}
}

// Add appends a handler to the registry.
func (r *Registry[T, R]) Add(h Handler[T, R]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers = append(r.handlers, h)
}

// Remove removes the first registration matching h. Returns
// ErrNotRegistered when no registration matches.
func (r *Registry[T, R]) Remove(h Handler[T, R]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.handlers {
		if handlersEqual(existing, h) {
			r.handlers = append(r.handlers[:i], r.handlers[i+1:]...)
			return nil
		}
	}
	return ErrNotRegistered
}

// Len returns the number of live registrations.
func (r *Registry[T, R]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.handlers)
}

// Clear discards all registrations.
func (r *Registry[T, R]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers = nil
}

// Snapshot returns an independent copy of the handler list, safe to
// iterate while the registry is mutated concurrently. A fire operates
// on a snapshot, so registrations made by a running handler take
// effect on the next fire, never the one in flight.
func (r *Registry[T, R]) Snapshot() []Handler[T, R] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.handlers) == 0 {
		return nil
	}
	snapshot := make([]Handler[T, R], len(r.handlers))
	copy(snapshot, r.handlers)
	return snapshot
}

// handlersEqual reports whether two handler values are the same
// registration identity. Function handlers (HandlerFunc and friends)
// are not ==-comparable in Go, so those compare by code pointer;
// comparable dynamic types compare by value.
//
// Code-pointer comparison cannot distinguish two closures over the
// same function body. When precise removal of one among several
// look-alike handlers matters, register struct handlers (compared by
// pointer identity) instead of closures.
func handlersEqual[T, R any](a, b Handler[T, R]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}
	if av.Kind() == reflect.Func {
		return av.Pointer() == bv.Pointer()
	}
	if av.Comparable() {
		return av.Equal(bv)
	}
	return false
}
