package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/hashid/pkg/config"
	"github.com/dmitrymomot/hashid/pkg/filter"
	"github.com/dmitrymomot/hashid/pkg/httpapi"
	"github.com/dmitrymomot/hashid/pkg/logger"
	"github.com/dmitrymomot/hashid/pkg/mongo"
	"github.com/dmitrymomot/hashid/pkg/opensearch"
	"github.com/dmitrymomot/hashid/pkg/pg"
	"github.com/dmitrymomot/hashid/pkg/pipeline"
	"github.com/dmitrymomot/hashid/pkg/redis"
	"github.com/dmitrymomot/hashid/pkg/webhook"
)

// Sink names accepted in pipeline.Config.Sinks.
const (
	sinkStdout     = "stdout"
	sinkOpenSearch = "opensearch"
	sinkPostgres   = "postgres"
	sinkMongo      = "mongo"
	sinkWebhook    = "webhook"
)

var (
	errUnknownSink  = errors.New("unknown sink")
	errUnknownDedup = errors.New("unknown dedup backend")
)

// components holds everything built from configuration, plus what must be
// released on exit.
type components struct {
	proc    *pipeline.Processor
	checks  map[string]httpapi.Check
	closers []func()
}

func (c *components) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// validate checks the parts of cfg that need no network access.
func validate(cfg appConfig) error {
	if err := cfg.Logger.Validate(); err != nil {
		return err
	}
	if _, err := filter.NewFromConfig(cfg.Filter); err != nil {
		return err
	}
	for _, name := range cfg.Pipeline.Sinks {
		switch name {
		case sinkStdout, sinkOpenSearch, sinkPostgres, sinkMongo, sinkWebhook:
		default:
			return fmt.Errorf("%w: %q", errUnknownSink, name)
		}
	}
	switch cfg.Pipeline.Dedup {
	case pipeline.DedupNone, pipeline.DedupMemory, pipeline.DedupRedis:
	default:
		return fmt.Errorf("%w: %q", errUnknownDedup, cfg.Pipeline.Dedup)
	}
	return nil
}

// build connects the configured backends and assembles the processor.
func build(ctx context.Context, cfg appConfig, out io.Writer, log *slog.Logger) (*components, error) {
	f, err := filter.NewFromConfig(cfg.Filter, filter.WithLogger(log))
	if err != nil {
		return nil, err
	}

	c := &components{checks: map[string]httpapi.Check{}}
	opts := []pipeline.Option{
		pipeline.WithWorkers(cfg.Pipeline.Workers),
		pipeline.WithLogger(log),
	}

	for _, name := range cfg.Pipeline.Sinks {
		sink, err := c.sink(ctx, name, out, log)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("sink %s: %w", name, err)
		}
		opts = append(opts, pipeline.WithSinks(sink))
	}

	switch cfg.Pipeline.Dedup {
	case pipeline.DedupNone:
	case pipeline.DedupMemory:
		opts = append(opts, pipeline.WithDeduper(pipeline.NewMemoryDeduper()))
	case pipeline.DedupRedis:
		var rc redis.Config
		if err := config.Load(&rc); err != nil {
			c.Close()
			return nil, err
		}
		client, err := redis.Connect(ctx, rc)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.closers = append(c.closers, func() { _ = client.Close() })
		dedup, err := redis.NewDeduperFromConfig(client, rc)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.checks["redis"] = dedup.Ping
		opts = append(opts, pipeline.WithDeduper(dedup))
	default:
		c.Close()
		return nil, fmt.Errorf("%w: %q", errUnknownDedup, cfg.Pipeline.Dedup)
	}

	proc, err := pipeline.New(f, opts...)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.proc = proc
	log.InfoContext(ctx, "pipeline ready",
		logger.Method(f.Generator().Method()),
		logger.Fields(f.Source()),
		logger.Target(f.Target()),
		slog.Any("sinks", cfg.Pipeline.Sinks),
		slog.String("dedup", cfg.Pipeline.Dedup),
	)
	return c, nil
}

func (c *components) sink(ctx context.Context, name string, out io.Writer, log *slog.Logger) (pipeline.Sink, error) {
	switch name {
	case sinkStdout:
		return pipeline.NewJSONWriter(out), nil

	case sinkOpenSearch:
		var oc opensearch.Config
		if err := config.Load(&oc); err != nil {
			return nil, err
		}
		client, err := opensearch.New(ctx, oc)
		if err != nil {
			return nil, err
		}
		idx, err := opensearch.NewIndexer(client, oc.Index)
		if err != nil {
			return nil, err
		}
		c.checks[sinkOpenSearch] = idx.Ping
		return idx, nil

	case sinkPostgres:
		var pc pg.Config
		if err := config.Load(&pc); err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, pc)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, pool.Close)
		if err := pg.Migrate(ctx, pool, pc, log); err != nil {
			return nil, err
		}
		store, err := pg.NewStore(pool, pc.EventsTable)
		if err != nil {
			return nil, err
		}
		c.checks[sinkPostgres] = store.Ping
		return store, nil

	case sinkMongo:
		var mc mongo.Config
		if err := config.Load(&mc); err != nil {
			return nil, err
		}
		coll, err := mongo.NewCollection(ctx, mc)
		if err != nil {
			return nil, err
		}
		client := coll.Database().Client()
		c.closers = append(c.closers, func() { _ = client.Disconnect(context.Background()) })
		store, err := mongo.NewStore(coll)
		if err != nil {
			return nil, err
		}
		c.checks[sinkMongo] = store.Ping
		return store, nil

	case sinkWebhook:
		var wc webhook.Config
		if err := config.Load(&wc); err != nil {
			return nil, err
		}
		return webhook.New(wc, nil)

	default:
		return nil, errUnknownSink
	}
}
