package api

import (
	"encoding/json"
	"net/http"

	"github.com/automind-labs/ecodrive/internal/routing"
)

type RoutesHandler struct {
	routes       routing.RouteProvider
	alternatives routing.AlternativesProvider
	traffic      routing.TrafficProvider
}

func NewRoutesHandler(routes routing.RouteProvider, alternatives routing.AlternativesProvider, traffic routing.TrafficProvider) *RoutesHandler {
	return &RoutesHandler{routes: routes, alternatives: alternatives, traffic: traffic}
}

type routeRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	RouteType   string `json:"routeType"`
}

// Calculate computes a route between two points.
// POST /api/routes
func (h *RoutesHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Origin == "" || req.Destination == "" {
		writeError(w, http.StatusBadRequest, "origin and destination required")
		return
	}

	route, err := h.routes.GetRoute(r.Context(), req.Origin, req.Destination, req.RouteType)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeData(w, http.StatusOK, route)
}

// Alternatives computes alternative routes through the secondary provider.
// POST /api/here-routes
func (h *RoutesHandler) Alternatives(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Origin == "" || req.Destination == "" {
		writeError(w, http.StatusBadRequest, "origin and destination required")
		return
	}

	result, err := h.alternatives.GetAlternatives(r.Context(), req.Origin, req.Destination)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeData(w, http.StatusOK, result)
}

// Traffic reports current traffic conditions.
// GET /api/traffic-updates
func (h *RoutesHandler) Traffic(w http.ResponseWriter, r *http.Request) {
	status, err := h.traffic.Status(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeData(w, http.StatusOK, status)
}
