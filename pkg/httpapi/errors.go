package httpapi

import "errors"

var (
	ErrNilProcessor  = errors.New("httpapi: processor is nil")
	ErrBodyTooLarge  = errors.New("request body too large")
	ErrEmptyBatch    = errors.New("batch is empty")
	ErrBatchTooLarge = errors.New("batch exceeds the configured limit")
	ErrNotReady      = errors.New("service is not ready")
)
