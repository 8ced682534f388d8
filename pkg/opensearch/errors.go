package opensearch

import "errors"

var (
	// ErrConnectionFailed indicates the client could not be created.
	ErrConnectionFailed = errors.New("opensearch connection failed")

	// ErrHealthcheckFailed indicates the cluster is unreachable or unhealthy.
	ErrHealthcheckFailed = errors.New("opensearch healthcheck failed")

	ErrNoAddresses  = errors.New("opensearch: no addresses configured")
	ErrEmptyIndex   = errors.New("opensearch: index name is empty")
	ErrIndexFailed  = errors.New("opensearch: index request failed")
	ErrEncodeFailed = errors.New("opensearch: failed to encode event")
)
