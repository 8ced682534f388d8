package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
	ErrEmptyConnectionURL     = errors.New("empty mongo connection URL")
	ErrNilCollection          = errors.New("mongo collection is nil")
	ErrInsertFailed           = errors.New("failed to store event in mongo")
)
