// Package httpapi exposes the fingerprint pipeline over HTTP.
//
// Routes:
//
//	POST /v1/hashid        one JSON event; responds with the event including
//	                       the target field, plus X-Hashid and
//	                       X-Hashid-Duplicate headers
//	POST /v1/hashid/batch  a JSON array of events; responds with one
//	                       BatchItem per event, in order
//	GET  /health/live      always 200
//	GET  /health/ready     200 when every registered Check passes, else 503
//
// Every response carries X-Request-ID. A client-supplied id is kept when it
// is at most 128 characters of [a-zA-Z0-9_-]; otherwise a UUID is generated.
// RequestIDExtractor adds the id to log records through
// logger.WithContextExtractors.
//
// Malformed bodies get 400, oversized bodies and batches get 413, and sink or
// dedup failures get 502. Error bodies are {"error": "...", "request_id": "..."}.
package httpapi
