// Package filter applies hashid fingerprints to decoded events.
//
// It is the event-pipeline stage around pkg/hashid: it selects the source
// fields from an Event, renders their values as strings, extracts the epoch
// from the timestamp field and writes the fingerprint into the target field.
//
// # Events
//
// Event is a map[string]any as produced by decoding JSON (DecodeEvent keeps
// numbers as json.Number so integers keep their literal text). Field names may
// be plain top-level keys or nested references such as "[http][request][id]".
//
// Values are rendered as follows:
//
//   - missing or nil – empty string
//   - string – unchanged; json.Number – its literal text
//   - time.Time – UTC ISO-8601 with milliseconds, e.g. 2016-01-01T02:00:00.000Z
//   - bool – true / false; integers – base 10; floats – shortest decimal form
//   - maps and slices – compact JSON with sorted keys
//
// The timestamp field yields epoch seconds: time.Time uses Unix(), numbers are
// truncated toward zero, strings are parsed as RFC 3339 and then as numbers.
// Anything else, including a missing field, is epoch 0.
//
// # Usage
//
//	f, err := filter.NewFromConfig(filter.DefaultConfig())
//	if err != nil {
//	    // unsupported method, empty target ...
//	}
//
//	ev, _ := filter.DecodeEvent([]byte(`{"message":"testmessage","@timestamp":"2016-01-01T02:00:00Z"}`))
//	id, _ := f.Apply(ev)
//	// ev["hashid"] == id
//
// # Overwrite policy
//
// By default the target field is overwritten. With WithOverwrite(false) an
// existing non-empty target value is kept and Apply reports false.
package filter
