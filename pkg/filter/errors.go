package filter

import "errors"

var (
	ErrNilGenerator        = errors.New("filter: nil hashid generator")
	ErrEmptyTarget         = errors.New("filter: target field must not be empty")
	ErrEmptySourceField    = errors.New("filter: source field name must not be empty")
	ErrEmptyTimestampField = errors.New("filter: timestamp field must not be empty when the prefix is enabled")
	ErrInvalidEvent        = errors.New("filter: event is not a JSON object")
)
