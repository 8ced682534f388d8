package httpapi

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// batchErrorResponse reports a batch that stopped at Failed. Items holds the
// events before it, which already reached the sinks.
type batchErrorResponse struct {
	errorResponse
	Failed int         `json:"failed"`
	Items  []BatchItem `json:"items"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	writeJSON(w, status, errorResponse{
		Error:     err.Error(),
		RequestID: RequestIDFromContext(r.Context()),
	})
}

func writeBatchError(w http.ResponseWriter, r *http.Request, status int, err error, items []BatchItem) {
	writeJSON(w, status, batchErrorResponse{
		errorResponse: errorResponse{
			Error:     err.Error(),
			RequestID: RequestIDFromContext(r.Context()),
		},
		Failed: len(items),
		Items:  items,
	})
}
