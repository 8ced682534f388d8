package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/hashid/pkg/filter"
)

// Sink posts each event as JSON to a fixed URL.
type Sink struct {
	cfg    Config
	client *http.Client
	now    func() time.Time
}

// New validates cfg and returns a Sink. A nil client gets a default with
// cfg.Timeout.
func New(cfg Config, client *http.Client) (*Sink, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, errors.Join(ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme must be http or https", ErrInvalidURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidURL)
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	cfg.MaxRetries = max(cfg.MaxRetries, 0)
	return &Sink{cfg: cfg, client: client, now: time.Now}, nil
}

func (s *Sink) Name() string { return "webhook" }

// Write delivers ev. 5xx, 408 and 429 responses and network errors are
// retried up to MaxRetries times; other 4xx responses fail immediately.
func (s *Sink) Write(ctx context.Context, id string, ev filter.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errors.Join(ErrInvalidPayload, err)
	}

	var lastErr error
	for attempt := 0; attempt <= s.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff(attempt, s.cfg.InitialBackoff, s.cfg.MaxBackoff)):
			}
		}

		status, err := s.post(ctx, id, payload)
		if err == nil {
			return nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if permanent(status) {
			return errors.Join(ErrPermanentFailure, err)
		}
	}
	return fmt.Errorf("%w after %d attempts: %w", ErrDeliveryFailed, s.cfg.MaxRetries+1, lastErr)
}

func (s *Sink) post(ctx context.Context, id string, payload []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "hashid-webhook/1.0")
	req.Header.Set(HeaderHashid, id)
	if s.cfg.Secret != "" {
		ts := s.now().Unix()
		req.Header.Set(HeaderTimestamp, fmt.Sprint(ts))
		req.Header.Set(HeaderSignature, Sign(s.cfg.Secret, ts, payload))
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	msg := strings.TrimSpace(strings.ReplaceAll(string(body), "\n", " "))
	return resp.StatusCode, fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, msg)
}

func permanent(status int) bool {
	switch status {
	case http.StatusRequestTimeout, http.StatusTooEarly, http.StatusTooManyRequests:
		return false
	}
	return status >= 400 && status < 500
}
