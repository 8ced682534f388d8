package config

import "errors"

var (
	// ErrParsingConfig wraps env parse failures for the destination struct.
	ErrParsingConfig = errors.New("config: cannot parse environment")

	// ErrReadingFile wraps unreadable or undecodable .env and YAML files.
	ErrReadingFile = errors.New("config: cannot read file")

	// ErrConfigNotLoaded is returned when a concurrent first load of the same
	// type failed.
	ErrConfigNotLoaded = errors.New("config: not loaded")

	// ErrNilPointer is returned when the destination is nil.
	ErrNilPointer = errors.New("config: nil destination")
)
