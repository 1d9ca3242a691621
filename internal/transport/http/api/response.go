package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorBody is the wire shape for every non-2xx response. Detail carries the
// underlying fault text for diagnostics only; clients branch on status codes,
// never on it.
type ErrorBody struct {
	Message string `json:"message"`
	Detail  string `json:"error,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Fail(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorBody{Message: message})
}

func FailWithDetail(w http.ResponseWriter, status int, message, detail string) {
	WriteJSON(w, status, ErrorBody{Message: message, Detail: detail})
}
