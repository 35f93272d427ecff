package dispatch

import (
	"context"
	"errors"
	"testing"
)

func TestSyncDispatcher_Dispatch(t *testing.T) {
	d := NewSyncDispatcher[string, int]()

	handler := newTestHandler(func(ctx context.Context, event string) (int, error) {
		return 5, nil
	})

	result := d.Dispatch(context.Background(), "event", handler)
	if !result.IsSuccess() || result.Value != 5 {
		t.Errorf("expected Success(5), got %+v", result)
	}
}

func TestSyncDispatcher_DispatchAll_NoShortCircuit(t *testing.T) {
	d := NewSyncDispatcher[string, int]()

	handlers := []Handler[string, int]{
		newTestHandler(func(ctx context.Context, event string) (int, error) {
			return 1, nil
		}),
		newTestHandler(func(ctx context.Context, event string) (int, error) {
			return 0, errors.New("middle failure")
		}),
		newTestHandler(func(ctx context.Context, event string) (int, error) {
			panic("middle panic")
		}),
		newTestHandler(func(ctx context.Context, event string) (int, error) {
			return 4, nil
		}),
	}

	results := d.DispatchAll(context.Background(), "event", handlers)

	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	if !results[0].IsSuccess() || results[0].Value != 1 {
		t.Errorf("expected Success(1), got %+v", results[0])
	}
	if results[1].Err == nil {
		t.Error("expected error result for second handler")
	}
	if !results[2].Panicked {
		t.Error("expected panic result for third handler")
	}
	if !results[3].IsSuccess() || results[3].Value != 4 {
		t.Errorf("expected handler after failures to run, got %+v", results[3])
	}
}

func TestSyncDispatcher_DispatchAll_Empty(t *testing.T) {
	d := NewSyncDispatcher[string, int]()

	results := d.DispatchAll(context.Background(), "event", nil)
	if len(results) != 0 {
		t.Errorf("expected empty results, got %d", len(results))
	}
}

func TestSyncDispatcher_Stats(t *testing.T) {
	d := NewSyncDispatcher[string, int]()

	d.Dispatch(context.Background(), "event", newTestHandler(
		func(ctx context.Context, event string) (int, error) { return 0, nil }))
	d.Dispatch(context.Background(), "event", newTestHandler(
		func(ctx context.Context, event string) (int, error) { return 0, errors.New("fail") }))
	d.Dispatch(context.Background(), "event", newTestHandler(
		func(ctx context.Context, event string) (int, error) { panic("boom") }))

	stats := d.Stats()
	if stats.Dispatched != 3 {
		t.Errorf("expected 3 dispatched, got %d", stats.Dispatched)
	}
	if stats.Succeeded != 1 {
		t.Errorf("expected 1 succeeded, got %d", stats.Succeeded)
	}
	if stats.Failed != 1 {
		t.Errorf("expected 1 failed, got %d", stats.Failed)
	}
	if stats.Panicked != 1 {
		t.Errorf("expected 1 panicked, got %d", stats.Panicked)
	}
}
