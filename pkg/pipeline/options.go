package pipeline

import "log/slog"

type options struct {
	sinks   []Sink
	dedup   Deduper
	workers int
	logger  *slog.Logger
}

// Option configures a Processor.
type Option func(*options)

// WithSinks appends output sinks. Nil sinks are skipped.
func WithSinks(sinks ...Sink) Option {
	return func(o *options) {
		for _, s := range sinks {
			if s != nil {
				o.sinks = append(o.sinks, s)
			}
		}
	}
}

// WithDeduper enables duplicate suppression.
func WithDeduper(d Deduper) Option {
	return func(o *options) { o.dedup = d }
}

// WithWorkers sets the number of concurrent workers. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithLogger sets the logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
