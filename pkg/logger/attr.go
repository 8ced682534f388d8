package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". Nil errors give an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// HashID records a generated fingerprint under "hashid".
func HashID(id string) slog.Attr {
	return slog.String("hashid", id)
}

// Method records the hash method name under "method".
func Method[T ~string](m T) slog.Attr {
	return slog.String("method", string(m))
}

// Target records the field the fingerprint is written to.
func Target(field string) slog.Attr {
	return slog.String("target", field)
}

// Fields records the source field list.
func Fields(fields []string) slog.Attr {
	return slog.Any("fields", fields)
}

// Sink records the name of an output sink.
func Sink(name string) slog.Attr {
	return slog.String("sink", name)
}

// Count records a counter under the given key.
func Count(key string, n int64) slog.Attr {
	return slog.Int64(key, n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// RequestID records the request identifier under "request_id".
// Empty ids give an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Service(name string) slog.Attr {
	return slog.String("service", name)
}
