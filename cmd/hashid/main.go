package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/dmitrymomot/hashid/pkg/config"
	"github.com/dmitrymomot/hashid/pkg/hashid"
	"github.com/dmitrymomot/hashid/pkg/httpapi"
	"github.com/dmitrymomot/hashid/pkg/httpserver"
	"github.com/dmitrymomot/hashid/pkg/logger"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return exitUsage
	}

	switch args[0] {
	case "run":
		return cmdRun(args[1:], in, out, errOut)
	case "serve":
		return cmdServe(args[1:], errOut)
	case "id":
		return cmdID(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return exitOK
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return exitUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "hashid: deterministic event fingerprints")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  hashid run [-config file.yaml] [-env-file .env] [-workers n] < events.ndjson")
	fmt.Fprintln(w, "  hashid serve [-config file.yaml] [-env-file .env] [-addr :8080]")
	fmt.Fprintln(w, "  hashid id [-config file.yaml] -field name=value [-field ...] [-ts epoch]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - settings come from HASHID_*, HTTP_*, LOG_* and backend variables, then the YAML file")
	fmt.Fprintln(w, "  - run writes one JSON event per line to stdout unless HASHID_SINKS says otherwise")
	fmt.Fprintln(w, "  - id hashes exactly the given fields")
}

// commonFlags registers the flags shared by every command.
type commonFlags struct {
	configPath string
	envFiles   []string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "YAML configuration file")
	fs.Func("env-file", "dotenv file to load before reading the environment (repeatable)", func(s string) error {
		c.envFiles = append(c.envFiles, s)
		return nil
	})
}

func (c *commonFlags) load(errOut io.Writer) (appConfig, bool) {
	if len(c.envFiles) > 0 {
		if err := config.LoadEnv(c.envFiles...); err != nil {
			fmt.Fprintf(errOut, "load env: %v\n", err)
			return appConfig{}, false
		}
	}
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		fmt.Fprintf(errOut, "load config: %v\n", err)
		return appConfig{}, false
	}
	if err := validate(cfg); err != nil {
		fmt.Fprintf(errOut, "invalid config: %v\n", err)
		return appConfig{}, false
	}
	return cfg, true
}

func newLogger(cfg appConfig, errOut io.Writer) *slog.Logger {
	return logger.NewFromConfig(cfg.Logger,
		logger.WithOutput(errOut),
		logger.WithContextExtractors(httpapi.RequestIDExtractor()),
	)
}

func cmdRun(args []string, in io.Reader, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var common commonFlags
	common.register(fs)
	workers := fs.Int("workers", 0, "number of concurrent workers (overrides HASHID_WORKERS)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(errOut, "usage: hashid run [-config file.yaml] [-workers n]")
		return exitUsage
	}

	cfg, ok := common.load(errOut)
	if !ok {
		return exitUsage
	}
	if *workers > 0 {
		cfg.Pipeline.Workers = *workers
	}
	log := newLogger(cfg, errOut)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := build(ctx, cfg, out, log)
	if err != nil {
		log.ErrorContext(ctx, "startup failed", logger.Error(err))
		return exitError
	}
	defer c.Close()

	stats, err := c.proc.RunReader(ctx, in)
	if stats.Invalid > 0 {
		log.WarnContext(ctx, "invalid input lines skipped", logger.Count("invalid", stats.Invalid))
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.ErrorContext(ctx, "run failed", logger.Error(err))
		return exitError
	}
	return exitOK
}

func cmdServe(args []string, errOut io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var common commonFlags
	common.register(fs)
	addr := fs.String("addr", "", "listen address (overrides HTTP_ADDR)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(errOut, "usage: hashid serve [-config file.yaml] [-addr :8080]")
		return exitUsage
	}

	cfg, ok := common.load(errOut)
	if !ok {
		return exitUsage
	}
	if *addr != "" {
		cfg.HTTP.Addr = *addr
	}
	// Served events are returned to the caller.
	cfg.Pipeline.Sinks = slices.DeleteFunc(cfg.Pipeline.Sinks, func(s string) bool { return s == sinkStdout })
	log := newLogger(cfg, errOut)

	ctx := context.Background()
	c, err := build(ctx, cfg, io.Discard, log)
	if err != nil {
		log.ErrorContext(ctx, "startup failed", logger.Error(err))
		return exitError
	}
	defer c.Close()

	opts := []httpapi.Option{httpapi.WithLogger(log)}
	for name, check := range c.checks {
		opts = append(opts, httpapi.WithCheck(name, check))
	}
	router, err := httpapi.NewRouter(c.proc, opts...)
	if err != nil {
		log.ErrorContext(ctx, "startup failed", logger.Error(err))
		return exitError
	}

	if err := httpserver.New(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, router); err != nil {
		log.ErrorContext(ctx, "server stopped", logger.Error(err))
		return exitError
	}
	return exitOK
}

func cmdID(args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("id", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var common commonFlags
	common.register(fs)
	record := hashid.Record{}
	fs.Func("field", "name=value to include in the fingerprint (repeatable)", func(s string) error {
		name, value, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return fmt.Errorf("expected name=value, got %q", s)
		}
		record[name] = value
		return nil
	})
	ts := fs.Int64("ts", 0, "epoch seconds for the timestamp prefix")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 0 || len(record) == 0 {
		fmt.Fprintln(errOut, "usage: hashid id -field name=value [-field ...] [-ts epoch]")
		return exitUsage
	}

	cfg, ok := common.load(errOut)
	if !ok {
		return exitUsage
	}
	gen, err := hashid.NewFromConfig(cfg.Filter.Config)
	if err != nil {
		fmt.Fprintf(errOut, "invalid config: %v\n", err)
		return exitUsage
	}

	fields := make([]string, 0, len(record))
	for name := range record {
		fields = append(fields, name)
	}
	fmt.Fprintln(out, gen.Generate(fields, record, *ts))
	return exitOK
}
