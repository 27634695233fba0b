package api

import (
	"net/http"

	"github.com/automind-labs/ecodrive/internal/progress"
)

type DashboardHandler struct {
	store *progress.Store
}

func NewDashboardHandler(store *progress.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// Dashboard summarizes the profile: trip stats, recent history, badges,
// trends and personalized tips.
// GET /api/dashboard
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()

	writeData(w, http.StatusOK, map[string]interface{}{
		"stats": map[string]interface{}{
			"totalTrips":  len(snap.Trips),
			"carbonSaved": snap.CarbonSaved(),
			"fuelSaved":   progress.FuelSavings(snap.Trips),
			"ecoScore":    snap.EcoScore,
		},
		"recentTrips":     snap.RecentTrips(10),
		"badges":          snap.Badges,
		"monthlyTrends":   progress.SampleTrends(),
		"recommendations": progress.Tips(snap),
	})
}
