package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/hashid/pkg/logger"
	"github.com/dmitrymomot/hashid/pkg/pipeline"
)

const (
	defaultMaxBodyBytes = 4 << 20
	defaultMaxBatch     = 1000
)

// NewRouter returns the HTTP API for proc.
func NewRouter(proc *pipeline.Processor, opts ...Option) (http.Handler, error) {
	if proc == nil {
		return nil, ErrNilProcessor
	}

	o := &options{
		logger:       logger.Discard(),
		checks:       map[string]Check{},
		maxBodyBytes: defaultMaxBodyBytes,
		maxBatch:     defaultMaxBatch,
	}
	for _, opt := range opts {
		opt(o)
	}

	log := o.logger.With(logger.Component("httpapi"))
	h := &handler{proc: proc, log: log, opts: o, checks: sortedNames(o.checks)}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/health/live", h.live)
	r.Get("/health/ready", h.ready)

	r.Post("/v1/hashid", h.fingerprint)
	r.Post("/v1/hashid/batch", h.batch)

	return r, nil
}

// requestLogger writes one record per request.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.InfoContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.String("remote", r.RemoteAddr),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
