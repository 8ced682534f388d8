package pipeline

import "errors"

var (
	ErrNilFilter = errors.New("pipeline: nil filter")
	ErrDedup     = errors.New("pipeline: de-duplication check failed")
	ErrSink      = errors.New("pipeline: sink write failed")
	ErrRead      = errors.New("pipeline: failed to read events")
)
