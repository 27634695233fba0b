package api

import (
	"encoding/json"
	"net/http"

	"github.com/automind-labs/ecodrive/internal/catalog"
	"github.com/automind-labs/ecodrive/internal/scoring"
)

type CompareHandler struct {
	scorer *scoring.Scorer
}

func NewCompareHandler(s *scoring.Scorer) *CompareHandler {
	return &CompareHandler{scorer: s}
}

type compareCar struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Mileage     float64 `json:"mileage"`
	Safety      float64 `json:"safety"`
	Emissions   float64 `json:"emissions"`
	Maintenance float64 `json:"maintenance"`
}

type compareRequest struct {
	Cars []compareCar `json:"cars"`
}

type comparedCar struct {
	compareCar
	TotalScore     float64      `json:"totalScore"`
	Recommendation scoring.Tier `json:"recommendation"`
}

// Compare scores and ranks the submitted cars.
// POST /api/compare-cars
func (h *CompareHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Cars) == 0 {
		writeError(w, http.StatusBadRequest, "cars required")
		return
	}

	vehicles := make([]catalog.Vehicle, len(req.Cars))
	for i, c := range req.Cars {
		vehicles[i] = catalog.Vehicle{
			Make:        c.Name,
			Price:       c.Price,
			Mileage:     c.Mileage,
			Safety:      c.Safety,
			Emissions:   c.Emissions,
			Maintenance: c.Maintenance,
		}
	}

	ranked := h.scorer.Rank(vehicles)

	results := make([]comparedCar, len(ranked))
	for i, cr := range ranked {
		results[i] = comparedCar{
			compareCar: compareCar{
				Name:        cr.Vehicle.Name(),
				Price:       cr.Vehicle.Price,
				Mileage:     cr.Vehicle.Mileage,
				Safety:      cr.Vehicle.Safety,
				Emissions:   cr.Vehicle.Emissions,
				Maintenance: cr.Vehicle.Maintenance,
			},
			TotalScore:     cr.Score,
			Recommendation: cr.Tier,
		}
	}

	writeData(w, http.StatusOK, map[string]interface{}{
		"comparison": results,
		"bestMatch":  results[0],
		"insights":   scoring.Insights(ranked),
	})
}
