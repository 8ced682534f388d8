package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/opensearch-project/opensearch-go/v2"

	"github.com/dmitrymomot/hashid/pkg/filter"
)

// Indexer writes events into an index using the fingerprint as document ID.
// Documents are created with op_type=create, so a second write of the same
// fingerprint is answered with 409 and treated as success.
type Indexer struct {
	client *opensearch.Client
	index  string
}

// NewIndexer returns an Indexer for index.
func NewIndexer(client *opensearch.Client, index string) (*Indexer, error) {
	if client == nil {
		return nil, ErrConnectionFailed
	}
	if index == "" {
		return nil, ErrEmptyIndex
	}
	return &Indexer{client: client, index: index}, nil
}

func (i *Indexer) Name() string { return "opensearch" }

// Ping calls the cluster info endpoint.
func (i *Indexer) Ping(ctx context.Context) error {
	return ping(ctx, i.client)
}

func ping(ctx context.Context, client *opensearch.Client) error {
	res, err := client.Info(client.Info.WithContext(ctx))
	if err != nil {
		return errors.Join(ErrHealthcheckFailed, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return errors.Join(ErrHealthcheckFailed, fmt.Errorf("status %s", res.Status()))
	}
	return nil
}

// Write indexes ev under id.
func (i *Indexer) Write(ctx context.Context, id string, ev filter.Event) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(ev); err != nil {
		return errors.Join(ErrEncodeFailed, err)
	}

	res, err := i.client.Index(i.index, &buf,
		i.client.Index.WithContext(ctx),
		i.client.Index.WithDocumentID(id),
		i.client.Index.WithOpType("create"),
	)
	if err != nil {
		return errors.Join(ErrIndexFailed, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusConflict {
		return nil
	}
	if res.IsError() {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return errors.Join(ErrIndexFailed, fmt.Errorf("status %s: %s", res.Status(), bytes.TrimSpace(body)))
	}
	return nil
}
