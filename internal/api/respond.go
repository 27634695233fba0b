package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/automind-labs/ecodrive/internal/catalog"
	"github.com/automind-labs/ecodrive/internal/emission"
	"github.com/automind-labs/ecodrive/internal/routing"
)

// envelope is the uniform response wrapper every endpoint uses. Clients rely
// on success plus exactly one of data or error being present.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Error: msg})
}

// statusFor maps a core error onto an HTTP status: validation failures are
// the caller's fault, upstream failures are surfaced as bad gateway, and
// everything else is an internal computation error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, emission.ErrNonPositiveDistance),
		errors.Is(err, catalog.ErrUnknownFuelType):
		return http.StatusBadRequest
	case errors.Is(err, routing.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
