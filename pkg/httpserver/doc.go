// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown.
//
// Run blocks until the context is cancelled, the process receives SIGINT or
// SIGTERM, or Shutdown is called. In-flight requests get
// Config.ShutdownTimeout to finish:
//
//	srv := httpserver.New(httpserver.DefaultConfig(), httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Listen failures wrap ErrStart and drain failures wrap ErrShutdown.
package httpserver
