package scoring

import (
	"sort"

	"github.com/automind-labs/ecodrive/internal/catalog"
)

// Normalization caps. Attributes at or past a cap saturate that sub-score.
const (
	priceCap       = 50.0    // lakh
	mileageCap     = 30.0    // km/l
	safetyMax      = 5.0     // star rating
	emissionsCap   = 200.0   // g/km
	maintenanceCap = 60000.0 // rupees per year
)

// Tier is the recommendation level derived from a composite score.
type Tier string

const (
	TierHighlyRecommended Tier = "Highly Recommended"
	TierRecommended       Tier = "Recommended"
	TierConsider          Tier = "Consider"
	TierNotRecommended    Tier = "Not Recommended"
)

// TierFor maps a composite score onto its recommendation tier.
func TierFor(score float64) Tier {
	switch {
	case score >= 80:
		return TierHighlyRecommended
	case score >= 65:
		return TierRecommended
	case score >= 50:
		return TierConsider
	default:
		return TierNotRecommended
	}
}

// Comparison is the scored result for one candidate vehicle.
type Comparison struct {
	Vehicle catalog.Vehicle `json:"vehicle"`
	Score   float64         `json:"totalScore"`
	Tier    Tier            `json:"recommendation"`
}

// Scorer computes weighted composite scores over normalized vehicle
// attributes. Scoring is pure: identical attributes always produce an
// identical score.
type Scorer struct {
	weights WeightSet
}

// NewScorer creates a Scorer with the given weights.
func NewScorer(weights WeightSet) *Scorer {
	return &Scorer{weights: weights}
}

// Score normalizes the five comparison attributes onto a 0-100 scale,
// clamps each, and combines them with the configured weights.
func (s *Scorer) Score(v catalog.Vehicle) float64 {
	price := clamp(100-(v.Price/priceCap)*100, 0, 100)
	mileage := clamp((v.Mileage/mileageCap)*100, 0, 100)
	safety := clamp((v.Safety/safetyMax)*100, 0, 100)
	emissions := clamp(100-(v.Emissions/emissionsCap)*100, 0, 100)
	maintenance := clamp(100-(v.Maintenance/maintenanceCap)*100, 0, 100)

	return price*s.weights.Price +
		mileage*s.weights.Mileage +
		safety*s.weights.Safety +
		emissions*s.weights.Emissions +
		maintenance*s.weights.Maintenance
}

// Rank scores every candidate and orders the results by descending score.
// Ties keep their original relative order.
func (s *Scorer) Rank(vehicles []catalog.Vehicle) []Comparison {
	results := make([]Comparison, len(vehicles))
	for i, v := range vehicles {
		score := s.Score(v)
		results[i] = Comparison{Vehicle: v, Score: score, Tier: TierFor(score)}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
