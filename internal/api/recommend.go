package api

import (
	"encoding/json"
	"net/http"

	"github.com/automind-labs/ecodrive/internal/scoring"
)

type RecommendHandler struct {
	recommender *scoring.Recommender
}

func NewRecommendHandler(rec *scoring.Recommender) *RecommendHandler {
	return &RecommendHandler{recommender: rec}
}

type recommendRequest struct {
	Budget     float64 `json:"budget"`
	Usage      string  `json:"usage"`
	Priority   string  `json:"priority"`
	FamilySize int     `json:"family_size"`
}

type recommendedCar struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Mileage     float64 `json:"mileage"`
	Safety      float64 `json:"safety"`
	Emissions   float64 `json:"emissions"`
	Maintenance float64 `json:"maintenance"`
	AIScore     float64 `json:"aiScore"`
	Confidence  float64 `json:"confidence"`
	Reason      string  `json:"reason"`
}

type alternative struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

func alternativeOptions() []alternative {
	return []alternative{
		{Type: "Used Cars", Description: "Consider certified pre-owned vehicles for better value"},
		{Type: "Leasing", Description: "Monthly leasing options available starting ₹15,000/month"},
		{Type: "EV Options", Description: "Electric vehicles with government subsidies"},
	}
}

// Recommend returns the top catalog matches for a budget/usage profile.
// POST /api/ai-recommendations
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
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
	priority, err := scoring.ParsePriority(req.Priority)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile := scoring.ProfileRequest{
		Budget:     req.Budget,
		Usage:      usage,
		Priority:   priority,
		FamilySize: req.FamilySize,
	}

	recs := h.recommender.Recommend(profile)
	results := make([]recommendedCar, len(recs))
	for i, rec := range recs {
		results[i] = recommendedCar{
			Name:        rec.Vehicle.Name(),
			Price:       rec.Vehicle.Price,
			Mileage:     rec.Vehicle.Mileage,
			Safety:      rec.Vehicle.Safety,
			Emissions:   rec.Vehicle.Emissions,
			Maintenance: rec.Vehicle.Maintenance,
			AIScore:     rec.Score,
			Confidence:  rec.Confidence,
			Reason:      rec.Reason,
		}
	}

	writeData(w, http.StatusOK, map[string]interface{}{
		"recommendations": results,
		"confidence":      h.recommender.Confidence(profile),
		"alternatives":    alternativeOptions(),
	})
}
