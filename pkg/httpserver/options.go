package httpserver

import "log/slog"

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithReadyHook registers a callback invoked with the bound address once the
// listener is open.
func WithReadyHook(h func(addr string)) Option {
	if h == nil {
		panic("WithReadyHook: nil hook")
	}
	return func(s *Server) { s.ready = append(s.ready, h) }
}
