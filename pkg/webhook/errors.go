package webhook

import "errors"

var (
	ErrInvalidURL       = errors.New("invalid webhook URL")
	ErrInvalidPayload   = errors.New("invalid webhook payload")
	ErrMissingSecret    = errors.New("webhook secret is required")
	ErrBadSignature     = errors.New("webhook signature mismatch")
	ErrExpiredSignature = errors.New("webhook signature timestamp outside the allowed window")
	ErrPermanentFailure = errors.New("permanent webhook failure")
	ErrDeliveryFailed   = errors.New("webhook delivery failed")
)
