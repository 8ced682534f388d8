package pipeline

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/hashid/pkg/filter"
	"github.com/dmitrymomot/hashid/pkg/logger"
)

const maxLineSize = 4 << 20

// Result describes the outcome for one event.
type Result struct {
	ID        string
	Duplicate bool
}

// Stats summarises a run.
type Stats struct {
	Processed  int64
	Duplicates int64
	Failed     int64
	Invalid    int64
}

// Processor wires a filter to a deduper and sinks.
type Processor struct {
	filter  *filter.Filter
	sinks   []Sink
	dedup   Deduper
	workers int
	logger  *slog.Logger
}

// New returns a Processor for f.
func New(f *filter.Filter, opts ...Option) (*Processor, error) {
	if f == nil {
		return nil, ErrNilFilter
	}
	o := &options{workers: 1, logger: logger.Discard()}
	for _, opt := range opts {
		opt(o)
	}
	return &Processor{
		filter:  f,
		sinks:   o.sinks,
		dedup:   o.dedup,
		workers: o.workers,
		logger:  o.logger.With(logger.Component("pipeline")),
	}, nil
}

// Process fingerprints ev and hands it to every sink unless it is a duplicate.
func (p *Processor) Process(ctx context.Context, ev filter.Event) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	id, _ := p.filter.Apply(ev)
	res := Result{ID: id}

	if p.dedup != nil {
		seen, err := p.dedup.Seen(ctx, id)
		if err != nil {
			return res, errors.Join(ErrDedup, err)
		}
		if seen {
			res.Duplicate = true
			p.logger.DebugContext(ctx, "duplicate event skipped", logger.HashID(id))
			return res, nil
		}
	}

	var errs []error
	for _, s := range p.sinks {
		if err := s.Write(ctx, id, ev); err != nil {
			p.logger.ErrorContext(ctx, "sink write failed",
				logger.Sink(s.Name()), logger.HashID(id), logger.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
		}
	}
	if len(errs) > 0 {
		if p.dedup != nil {
			// The id was recorded by Seen above; a retry must reach the sinks.
			if err := p.dedup.Forget(context.WithoutCancel(ctx), id); err != nil {
				p.logger.ErrorContext(ctx, "dedup forget failed", logger.HashID(id), logger.Error(err))
				errs = append(errs, errors.Join(ErrDedup, err))
			}
		}
		return res, errors.Join(ErrSink, errors.Join(errs...))
	}
	return res, nil
}

// Run processes events from in until it is closed or ctx is done.
func (p *Processor) Run(ctx context.Context, in <-chan filter.Event) (Stats, error) {
	start := time.Now()

	var (
		processed, duplicates, failed atomic.Int64
		firstErr                      error
		errOnce                       sync.Once
	)

	g, gctx := errgroup.WithContext(ctx)
	for range p.workers {
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				case ev, ok := <-in:
					if !ok {
						return nil
					}
					res, err := p.Process(gctx, ev)
					switch {
					case err != nil:
						if ctxErr := gctx.Err(); ctxErr != nil {
							return ctxErr
						}
						failed.Add(1)
						errOnce.Do(func() { firstErr = err })
					case res.Duplicate:
						duplicates.Add(1)
					default:
						processed.Add(1)
					}
				}
			}
		})
	}

	err := g.Wait()
	stats := Stats{
		Processed:  processed.Load(),
		Duplicates: duplicates.Load(),
		Failed:     failed.Load(),
	}

	p.logger.InfoContext(ctx, "run finished",
		logger.Count("processed", stats.Processed),
		logger.Count("duplicates", stats.Duplicates),
		logger.Count("failed", stats.Failed),
		logger.Duration(time.Since(start)),
	)

	if err != nil {
		return stats, err
	}
	return stats, firstErr
}

// RunReader decodes newline-delimited JSON events from r and runs them.
// Lines that are not JSON objects are skipped and counted as invalid.
func (p *Processor) RunReader(ctx context.Context, r io.Reader) (Stats, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan filter.Event, p.workers)
	var (
		invalid atomic.Int64
		readErr error
	)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer close(events)

		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		line := 0
		for sc.Scan() {
			line++
			b := bytes.TrimSpace(sc.Bytes())
			if len(b) == 0 {
				continue
			}
			ev, err := filter.DecodeEvent(b)
			if err != nil {
				invalid.Add(1)
				p.logger.WarnContext(ctx, "skipping invalid event", slog.Int("line", line), logger.Error(err))
				continue
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
		readErr = sc.Err()
	}()

	stats, err := p.Run(ctx, events)
	if ctx.Err() != nil {
		// The reader may still be blocked on r.
		stats.Invalid = invalid.Load()
		return stats, err
	}
	<-done

	stats.Invalid = invalid.Load()
	if err == nil && readErr != nil {
		err = errors.Join(ErrRead, readErr)
	}
	return stats, err
}
