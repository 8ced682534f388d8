package filter

import "log/slog"

type options struct {
	source         []string
	timestampField string
	target         string
	overwrite      bool
	logger         *slog.Logger
}

func defaultOptions() *options {
	return &options{
		source:         []string{"message"},
		timestampField: "@timestamp",
		target:         "hashid",
		overwrite:      true,
	}
}

// Option configures a Filter.
type Option func(*options)

// WithSource sets the fields the fingerprint is computed over.
func WithSource(fields ...string) Option {
	return func(o *options) { o.source = append([]string(nil), fields...) }
}

// WithTimestampField sets the field holding the event time.
func WithTimestampField(field string) Option {
	return func(o *options) { o.timestampField = field }
}

// WithTarget sets the field the fingerprint is written to.
func WithTarget(field string) Option {
	return func(o *options) { o.target = field }
}

// WithOverwrite controls whether an existing target value is replaced.
func WithOverwrite(overwrite bool) Option {
	return func(o *options) { o.overwrite = overwrite }
}

// WithLogger sets the logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
