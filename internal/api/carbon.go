package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/automind-labs/ecodrive/internal/catalog"
	"github.com/automind-labs/ecodrive/internal/events"
	"github.com/automind-labs/ecodrive/internal/progress"
)

type CarbonHandler struct {
	store  *progress.Store
	events events.Client
}

func NewCarbonHandler(store *progress.Store, ev events.Client) *CarbonHandler {
	return &CarbonHandler{store: store, events: ev}
}

type trackRequest struct {
	Distance    float64 `json:"distance"`
	VehicleType string  `json:"vehicleType"`
	Route       string  `json:"route"`
}

// Track records a trip against the profile and reports the footprint plus
// any newly unlocked badges.
// POST /api/track-carbon
func (h *CarbonHandler) Track(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fuel, err := catalog.ParseFuelType(req.VehicleType)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.store.RecordTrip(req.Distance, fuel, req.Route)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	tripsRecordedTotal.Inc()
	badgesUnlockedTotal.Add(float64(len(summary.NewBadges)))

	if h.events != nil {
		tripID := summary.Trip.ID.String()
		_ = h.events.Publish(events.SubjectTripRecorded(tripID), events.TripRecordedEvent{
			TripID:           tripID,
			DistanceKm:       req.Distance,
			VehicleType:      string(fuel),
			CarbonEmittedKg:  summary.Footprint.EmissionsKg,
			TotalFootprintKg: summary.TotalFootprintKg,
			RecordedAt:       time.Now().UTC(),
		})
		for _, badge := range summary.NewBadges {
			_ = h.events.Publish(events.SubjectBadgeUnlocked(badge), events.BadgeUnlockedEvent{
				Badge:      badge,
				TotalTrips: summary.TotalTrips,
				UnlockedAt: time.Now().UTC(),
			})
		}
	}

	writeData(w, http.StatusOK, map[string]interface{}{
		"emissions":      summary.Footprint.EmissionsKg,
		"fuelConsumed":   summary.Footprint.FuelConsumed,
		"cost":           summary.Footprint.Cost,
		"newBadges":      summary.NewBadges,
		"totalFootprint": summary.TotalFootprintKg,
		"ecoScore":       summary.EcoScore,
	})
}
