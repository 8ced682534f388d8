package filter

import (
	"log/slog"

	"github.com/dmitrymomot/hashid/pkg/hashid"
	"github.com/dmitrymomot/hashid/pkg/logger"
)

// Filter writes hashid fingerprints into events. It is safe for concurrent
// use as long as each goroutine works on its own Event.
type Filter struct {
	gen            *hashid.Generator
	source         []string
	timestampField string
	target         string
	overwrite      bool
	logger         *slog.Logger
}

// New binds gen to the field selection given by opts.
func New(gen *hashid.Generator, opts ...Option) (*Filter, error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.target == "" {
		return nil, ErrEmptyTarget
	}
	for _, f := range o.source {
		if f == "" {
			return nil, ErrEmptySourceField
		}
	}
	if gen.TimestampPrefix() && o.timestampField == "" {
		return nil, ErrEmptyTimestampField
	}
	if o.logger == nil {
		o.logger = logger.Discard()
	}

	return &Filter{
		gen:            gen,
		source:         o.source,
		timestampField: o.timestampField,
		target:         o.target,
		overwrite:      o.overwrite,
		logger:         o.logger.With(logger.Component("filter")),
	}, nil
}

// NewFromConfig builds the generator and the filter from cfg. Extra options
// override config values.
func NewFromConfig(cfg Config, opts ...Option) (*Filter, error) {
	gen, err := hashid.NewFromConfig(cfg.Config)
	if err != nil {
		return nil, err
	}

	configOpts := make([]Option, 0, 4+len(opts))
	configOpts = append(configOpts,
		WithSource(cfg.Source...),
		WithTimestampField(cfg.TimestampField),
		WithTarget(cfg.Target),
		WithOverwrite(cfg.Overwrite),
	)
	return New(gen, append(configOpts, opts...)...)
}

// Target is the field the fingerprint is written to.
func (f *Filter) Target() string { return f.target }

// Source returns a copy of the source field list.
func (f *Filter) Source() []string { return append([]string(nil), f.source...) }

// Generator returns the underlying generator.
func (f *Filter) Generator() *hashid.Generator { return f.gen }

// Fingerprint computes the identifier for ev without modifying it.
func (f *Filter) Fingerprint(ev Event) string {
	var epoch int64
	if f.gen.TimestampPrefix() {
		epoch = ev.Epoch(f.timestampField)
	}
	return f.gen.Generate(f.source, ev, epoch)
}

// Apply computes the fingerprint and stores it in the target field.
// It returns the identifier now held by the event and whether it was written.
// With overwrite disabled an existing non-empty target is kept.
func (f *Filter) Apply(ev Event) (string, bool) {
	if !f.overwrite {
		if existing, ok := ev.Get(f.target); ok && existing != "" {
			f.logger.Debug("target already set, keeping value", logger.Target(f.target), logger.HashID(existing))
			return existing, false
		}
	}

	id := f.Fingerprint(ev)
	ev.Set(f.target, id)
	return id, true
}
