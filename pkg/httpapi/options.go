package httpapi

import (
	"context"
	"log/slog"
)

// Check reports whether a dependency is usable.
type Check func(context.Context) error

type options struct {
	logger       *slog.Logger
	checks       map[string]Check
	maxBodyBytes int64
	maxBatch     int
}

// Option configures the router.
type Option func(*options)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCheck registers a readiness check under name.
func WithCheck(name string, c Check) Option {
	return func(o *options) {
		if c != nil {
			o.checks[name] = c
		}
	}
}

// WithMaxBodyBytes limits request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBodyBytes = n
		}
	}
}

// WithMaxBatch limits the number of events in a batch request.
func WithMaxBatch(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBatch = n
		}
	}
}
