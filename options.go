package eventsystem

import "log/slog"

// Option configures an EventSystem.
type Option func(*config)

// config contains per-instance configuration.
type config struct {
	// mode selects inline or background handler execution.
	mode DeliveryMode

	// errorValue controls whether failure details retain the error
	// value and its type, or only the message.
	errorValue bool

	// stackTrace controls whether failure details retain a captured
	// stack trace.
	stackTrace bool

	// logger receives lifecycle and failure diagnostics.
	logger *slog.Logger
}

// defaultConfig returns the default configuration: synchronous
// delivery, error values retained, no stack capture.
func defaultConfig() config {
	return config{
		mode:       DeliverySync,
		errorValue: true,
		stackTrace: false,
		logger:     slog.Default(),
	}
}

// WithDeliveryMode selects synchronous or asynchronous delivery.
// The default is DeliverySync.
func WithDeliveryMode(mode DeliveryMode) Option {
	return func(c *config) {
		c.mode = mode
	}
}

// WithErrorValue controls whether FailureDetail entries carry the
// underlying error value and its type. When disabled only the message
// string is retained. Enabled by default.
func WithErrorValue(include bool) Option {
	return func(c *config) {
		c.errorValue = include
	}
}

// WithStackTrace controls whether FailureDetail entries carry a stack
// trace captured at the failure boundary. Disabled by default.
func WithStackTrace(capture bool) Option {
	return func(c *config) {
		c.stackTrace = capture
	}
}

// WithLogger sets the structured logger used for diagnostics. The
// default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
