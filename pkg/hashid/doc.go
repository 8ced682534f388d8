// Package hashid generates deterministic, keyed fingerprints for structured
// records.
//
// A fingerprint is a short base64 string derived from a selected set of record
// fields. It is reproducible for identical input, collision resistant thanks
// to an HMAC over the canonical field bytes, and can optionally carry a 4-byte
// big-endian epoch prefix so identifiers sort roughly by time when compared as
// byte strings. The main use is generating stable document ids so that
// re-ingesting the same event does not produce a duplicate record.
//
// # Architecture
//
// Generation is a pipeline of four pure stages:
//
//   - Canonicalize – renders the selected fields as |name|value blocks over the
//     byte-wise sorted field names, so caller field order never matters.
//   - Digest / Truncate – HMAC with the configured Method and key, optionally
//     keeping only the last N bytes of the sum.
//   - PackEpoch – encodes the low 32 bits of an epoch-seconds value big-endian.
//   - Encode – concatenates prefix and digest and renders unpadded standard
//     base64.
//
// Generator binds a validated Method, key, truncation length and prefix flag
// once and runs the stages for each call.
//
// # Usage
//
//	import "github.com/dmitrymomot/hashid/pkg/hashid"
//
//	gen, err := hashid.New(
//	    hashid.WithMethod(hashid.SHA256),
//	    hashid.WithKey([]byte("secret")),
//	    hashid.WithHashBytesUsed(12),
//	)
//	if err != nil {
//	    // unsupported method
//	}
//
//	id := gen.Generate([]string{"message"}, hashid.Record{"message": "testmessage"}, time.Now().Unix())
//
// Environment-based configuration:
//
//	var cfg hashid.Config
//	_ = config.Load(&cfg)
//	gen, err := hashid.NewFromConfig(cfg)
//
// # Missing values
//
// A field absent from the record is rendered as the empty string, and a
// missing timestamp is treated as epoch 0. Neither is an error.
//
// # Limitations
//
// The canonical form does not escape '|' inside values, so a value containing
// "|other|" can produce the same bytes as a genuine second field. The
// encoding is good enough for de-duplication ids but is not injective; do not
// rely on it to reconstruct the input.
//
// The timestamp prefix keeps only the low 32 bits of the epoch. Negative or
// over-range values wrap around and lose the ordering property.
//
// # Error Handling
//
// Only construction can fail, with ErrUnsupportedMethod for an unknown
// algorithm name. A zero, negative or oversized truncation length keeps the
// full digest. Generate itself never fails.
//
// # Concurrency
//
// Generator is immutable after construction and every call builds its own HMAC
// state and buffer, so a single Generator can be shared by any number of
// goroutines.
package hashid
