package api

import (
	"encoding/json"
	"net/http"

	"github.com/automind-labs/ecodrive/internal/catalog"
	"github.com/automind-labs/ecodrive/internal/scoring"
	"github.com/automind-labs/ecodrive/internal/subsidy"
)

type EVHandler struct{}

func NewEVHandler() *EVHandler {
	return &EVHandler{}
}

type evRequest struct {
	State  string  `json:"state"`
	Budget float64 `json:"budget"`
	Usage  string  `json:"usage"`
}

// Recommend returns subsidy-adjusted EV options for a region and budget.
// POST /api/ev-recommendations
func (h *EVHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req evRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Budget <= 0 {
		writeError(w, http.StatusBadRequest, "budget must be positive")
		return
	}
	usage, err := scoring.ParseUsage(req.Usage)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	savings, err := subsidy.ProjectSavings(req.Budget, usage)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeData(w, http.StatusOK, map[string]interface{}{
		"recommendations":    subsidy.Recommendations(catalog.ElectricVehicles(), req.State, req.Budget, usage),
		"subsidies":          subsidy.InfoFor(req.State),
		"chargingStations":   subsidy.Stations(req.State),
		"savingsCalculation": savings,
	})
}
