// Package logger builds the slog loggers used by the hashid filter, pipeline,
// HTTP API and CLI.
//
// New returns a *slog.Logger configured through Option functions:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   - WithLevel / WithLevelName – minimum level.
//   - WithEnvironment – development (debug, text) or staging/production
//     (info, JSON) defaults plus service and env attributes.
//   - WithAttr – static attributes.
//   - WithContextExtractors / WithContextValue – attributes pulled from the
//     context on every Handle call, such as the HTTP request id.
//
// NewFromConfig does the same from a Config loaded with pkg/config
// (APP_ENV, APP_NAME, LOG_LEVEL, LOG_FORMAT). Discard returns a logger that
// drops everything; packages use it when no logger is supplied.
//
// # Attributes
//
// attr.go holds constructors that keep key names consistent across packages:
// HashID, Method, Target, Fields, Sink, Count, Duration, RequestID, Error and
// Errors. Error and Errors return an empty Attr for nil errors, so
//
//	log.Info("indexed", logger.HashID(id), logger.Error(err))
//
// needs no nil check.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "hashid"),
//	    logger.WithContextExtractors(httpapi.RequestIDExtractor()),
//	)
//	logger.SetAsDefault(log)
package logger
