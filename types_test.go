package eventsystem

import "testing"

func TestDeliveryMode_String(t *testing.T) {
	tests := []struct {
		mode     DeliveryMode
		expected string
	}{
		{DeliverySync, "sync"},
		{DeliveryAsync, "async"},
		{DeliveryMode(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.expected {
			t.Errorf("DeliveryMode(%d).String() = %q, want %q", tt.mode, got, tt.expected)
		}
	}
}

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{OutcomeSuccess, "success"},
		{OutcomeFailure, "failure"},
		{OutcomePending, "pending"},
		{Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.expected {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.expected)
		}
	}
}

func TestResult_Predicates(t *testing.T) {
	tests := []struct {
		name    string
		result  Result[string, int]
		success bool
		failure bool
		pending bool
	}{
		{"success", Result[string, int]{Outcome: OutcomeSuccess, Value: 1}, true, false, false},
		{"failure", Result[string, int]{Outcome: OutcomeFailure, Failure: &FailureDetail{}}, false, true, false},
		{"pending", Result[string, int]{Outcome: OutcomePending}, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.IsSuccess(); got != tt.success {
				t.Errorf("IsSuccess() = %v, want %v", got, tt.success)
			}
			if got := tt.result.IsFailure(); got != tt.failure {
				t.Errorf("IsFailure() = %v, want %v", got, tt.failure)
			}
			if got := tt.result.IsPending(); got != tt.pending {
				t.Errorf("IsPending() = %v, want %v", got, tt.pending)
			}
		})
	}
}
