package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/dmitrymomot/hashid/pkg/filter"
)

// Sink receives fingerprinted events.
type Sink interface {
	Name() string
	Write(ctx context.Context, id string, ev filter.Event) error
}

// Deduper records fingerprints and reports whether one was seen before.
// Seen must be atomic: of two concurrent calls with the same id exactly one
// returns false. Forget drops a recorded id so that an event whose sink
// write failed is accepted again.
type Deduper interface {
	Seen(ctx context.Context, id string) (bool, error)
	Forget(ctx context.Context, id string) error
}

// JSONWriter writes events as newline-delimited JSON.
type JSONWriter struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewJSONWriter returns a sink writing to w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONWriter{enc: enc}
}

func (w *JSONWriter) Name() string { return "stdout" }

func (w *JSONWriter) Write(_ context.Context, _ string, ev filter.Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.enc.Encode(ev)
}

// MemoryDeduper keeps seen fingerprints in process memory. It grows without
// bound and suits batch runs over finite input.
type MemoryDeduper struct {
	seen sync.Map
}

func NewMemoryDeduper() *MemoryDeduper {
	return &MemoryDeduper{}
}

func (d *MemoryDeduper) Seen(_ context.Context, id string) (bool, error) {
	_, loaded := d.seen.LoadOrStore(id, struct{}{})
	return loaded, nil
}

func (d *MemoryDeduper) Forget(_ context.Context, id string) error {
	d.seen.Delete(id)
	return nil
}
