package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strconv"

	"github.com/dmitrymomot/hashid/pkg/filter"
	"github.com/dmitrymomot/hashid/pkg/logger"
	"github.com/dmitrymomot/hashid/pkg/pipeline"
)

const (
	// HashidHeader carries the fingerprint of a single processed event.
	HashidHeader = "X-Hashid"
	// DuplicateHeader is "true" when the event was seen before.
	DuplicateHeader = "X-Hashid-Duplicate"
)

// BatchItem is one entry of a batch response.
type BatchItem struct {
	ID        string       `json:"id"`
	Duplicate bool         `json:"duplicate"`
	Event     filter.Event `json:"event"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type handler struct {
	proc   *pipeline.Processor
	log    *slog.Logger
	opts   *options
	checks []string
}

// fingerprint handles POST /v1/hashid.
func (h *handler) fingerprint(w http.ResponseWriter, r *http.Request) {
	body, err := h.readBody(w, r)
	if err != nil {
		writeError(w, r, statusForRead(err), err)
		return
	}
	ev, err := filter.DecodeEvent(body)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	res, err := h.proc.Process(r.Context(), ev)
	if err != nil {
		h.log.ErrorContext(r.Context(), "processing failed", logger.Error(err))
		writeError(w, r, statusForProcess(err), err)
		return
	}

	w.Header().Set(HashidHeader, res.ID)
	w.Header().Set(DuplicateHeader, strconv.FormatBool(res.Duplicate))
	writeJSON(w, http.StatusOK, ev)
}

// batch handles POST /v1/hashid/batch. Events are processed in order and
// processing stops at the first failure. The error body then carries the
// index of the failed event and the items written before it.
func (h *handler) batch(w http.ResponseWriter, r *http.Request) {
	body, err := h.readBody(w, r)
	if err != nil {
		writeError(w, r, statusForRead(err), err)
		return
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		writeError(w, r, http.StatusBadRequest, errors.Join(filter.ErrInvalidEvent, err))
		return
	}
	switch {
	case len(raw) == 0:
		writeError(w, r, http.StatusBadRequest, ErrEmptyBatch)
		return
	case len(raw) > h.opts.maxBatch:
		writeError(w, r, http.StatusRequestEntityTooLarge, ErrBatchTooLarge)
		return
	}

	events := make([]filter.Event, len(raw))
	for i, msg := range raw {
		ev, err := filter.DecodeEvent(msg)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Errorf("event %d: %w", i, err))
			return
		}
		events[i] = ev
	}

	items := make([]BatchItem, 0, len(events))
	for _, ev := range events {
		res, err := h.proc.Process(r.Context(), ev)
		if err != nil {
			h.log.ErrorContext(r.Context(), "batch processing failed",
				logger.Count("done", int64(len(items))), logger.Error(err))
			writeBatchError(w, r, statusForProcess(err), err, items)
			return
		}
		items = append(items, BatchItem{ID: res.ID, Duplicate: res.Duplicate, Event: ev})
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *handler) live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (h *handler) ready(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(h.checks))}
	status := http.StatusOK
	for _, name := range h.checks {
		if err := h.opts.checks[name](r.Context()); err != nil {
			h.log.WarnContext(r.Context(), "readiness check failed",
				slog.String("check", name), logger.Error(err))
			resp.Checks[name] = err.Error()
			resp.Status = ErrNotReady.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}
	writeJSON(w, status, resp)
}

func (h *handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.opts.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrBodyTooLarge
		}
		return nil, err
	}
	return body, nil
}

func statusForRead(err error) int {
	if errors.Is(err, ErrBodyTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func statusForProcess(err error) int {
	switch {
	case errors.Is(err, pipeline.ErrDedup), errors.Is(err, pipeline.ErrSink):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func sortedNames(m map[string]Check) []string {
	return slices.Sorted(maps.Keys(m))
}
