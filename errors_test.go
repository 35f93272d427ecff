package eventsystem

import (
	"errors"
	"testing"
)

func TestPanicError_Error(t *testing.T) {
	err := &PanicError{Value: "boom"}
	want := "handler panicked: boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestPanicError_Is(t *testing.T) {
	err := &PanicError{Value: 42}

	if !errors.Is(err, ErrHandlerPanic) {
		t.Error("expected errors.Is(err, ErrHandlerPanic) to be true")
	}
	if errors.Is(err, ErrNotRegistered) {
		t.Error("expected errors.Is(err, ErrNotRegistered) to be false")
	}
}
