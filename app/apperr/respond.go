package apperr

import (
	"encoding/json"
	"net/http"
	"time"

	"taskboard/global"
)

type envelope struct {
	Error payload `json:"error"`
}

type payload struct {
	Type      Type   `json:"type"`
	Message   string `json:"message"`
	Status    int    `json:"status"`
	Path      string `json:"path"`
	Details   any    `json:"details,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Write renders err as the JSON error envelope. Server-side failures are
// logged; their message is not echoed to the client.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	ae := From(err)
	if ae.Status >= 500 {
		global.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("unhandled error")
	}
	body := envelope{Error: payload{
		Type:      ae.Type,
		Message:   ae.Message,
		Status:    ae.Status,
		Path:      r.URL.Path,
		Details:   ae.Details,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ae.Status)
	_ = json.NewEncoder(w).Encode(body)
}
