// Package pipeline runs events through a hashid filter, an optional
// de-duplication step and a set of sinks.
//
// A Processor is built from a *filter.Filter plus options:
//
//   - WithSinks – destinations such as JSONWriter, opensearch.Indexer,
//     pg.Store or mongo.Store. Every sink receives every non-duplicate event.
//   - WithDeduper – skips events whose fingerprint was already seen
//     (MemoryDeduper for a single process, redis.Deduper across processes).
//   - WithWorkers – number of goroutines used by Run and RunReader.
//
// Process handles a single event. Run consumes a channel and RunReader reads
// newline-delimited JSON. Sink failures do not stop the run: they are logged,
// counted in Stats.Failed and the first one is returned once the input is
// drained. Context cancellation stops the run immediately.
//
// With more than one worker the order in which sinks observe events is not
// the input order.
package pipeline
