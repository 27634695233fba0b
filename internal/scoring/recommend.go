package scoring

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/automind-labs/ecodrive/internal/catalog"
)

// Priority is the user's stated buying priority.
type Priority string

const (
	PriorityFuel        Priority = "fuel"
	PriorityPerformance Priority = "performance"
	PrioritySafety      Priority = "safety"
	PriorityFeatures    Priority = "features"
)

// ParsePriority maps a request string onto the closed Priority set. An empty
// string means "not stated" and is valid.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(s))
	switch p {
	case "", PriorityFuel, PriorityPerformance, PrioritySafety, PriorityFeatures:
		return p, nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// Usage is the user's dominant driving pattern.
type Usage string

const (
	UsageCity    Usage = "city"
	UsageHighway Usage = "highway"
	UsageFamily  Usage = "family"
	UsageMixed   Usage = "mixed"
)

// ParseUsage maps a request string onto the closed Usage set. An empty
// string means "not stated" and is valid.
func ParseUsage(s string) (Usage, error) {
	u := Usage(strings.ToLower(s))
	switch u {
	case "", UsageCity, UsageHighway, UsageFamily, UsageMixed:
		return u, nil
	}
	return "", fmt.Errorf("unknown usage %q", s)
}

// ProfileRequest captures the budget/usage profile a recommendation set is
// generated for. Budget is in lakh.
type ProfileRequest struct {
	Budget     float64
	Usage      Usage
	Priority   Priority
	FamilySize int
}

// Recommendation is one profile-scored catalog entry.
type Recommendation struct {
	Vehicle    catalog.Vehicle `json:"vehicle"`
	Score      float64         `json:"aiScore"`
	Confidence float64         `json:"confidence"`
	Reason     string          `json:"reason"`
}

const (
	topRecommendations = 5
	confidenceCeiling  = 95
	defaultFamilySize  = 4
)

// Recommender matches catalog vehicles against a user profile. It is
// intentionally separate from Scorer: Scorer answers which of a given set of
// cars is objectively best, Recommender answers which catalog car best fits
// the user's stated intent. Confidence jitter comes from the injected random
// source so tests can fix the stream.
type Recommender struct {
	vehicles []catalog.Vehicle

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRecommender creates a Recommender over the given catalog. A nil rng
// falls back to a time-seeded source.
func NewRecommender(vehicles []catalog.Vehicle, rng *rand.Rand) *Recommender {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Recommender{vehicles: vehicles, rng: rng}
}

// ProfileScore computes the deterministic profile score for one vehicle.
// The priority branches are mutually exclusive; the usage and family-size
// bonuses are independent and additive.
func (r *Recommender) ProfileScore(v catalog.Vehicle, req ProfileRequest) float64 {
	var score float64

	switch req.Priority {
	case PriorityFuel:
		score += v.Mileage * 4
	case PriorityPerformance:
		score += (v.Price / req.Budget) * 50
	case PrioritySafety:
		score += v.Safety * 18
	case PriorityFeatures:
		score += v.Safety*10 + (v.Price/req.Budget)*30
	}

	if req.Usage == UsageCity && v.Mileage > 20 {
		score += 15
	}
	if req.Usage == UsageHighway && v.Mileage > 15 {
		score += 10
	}
	if req.Usage == UsageFamily && v.Safety >= 4 {
		score += 20
	}
	if req.Usage == UsageMixed {
		score += v.Mileage * 2
	}

	if req.FamilySize > 4 && v.Price > 10 {
		score += 10
	}
	if req.FamilySize <= 2 && v.Price < 10 {
		score += 5
	}

	return score
}

// Recommend filters the catalog to vehicles within budget, scores them
// against the profile, and returns the top entries by descending score with
// a jittered confidence and a short reason each.
func (r *Recommender) Recommend(req ProfileRequest) []Recommendation {
	if req.FamilySize == 0 {
		req.FamilySize = defaultFamilySize
	}

	var results []Recommendation
	for _, v := range r.vehicles {
		if v.Price > req.Budget {
			continue
		}
		results = append(results, Recommendation{
			Vehicle: v,
			Score:   r.ProfileScore(v, req),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > topRecommendations {
		results = results[:topRecommendations]
	}

	for i := range results {
		results[i].Confidence = math.Min(confidenceCeiling, results[i].Score+r.jitter(20))
		results[i].Reason = reasonFor(results[i].Vehicle, req)
	}
	return results
}

// Confidence is the aggregate confidence for a whole recommendation request.
func (r *Recommender) Confidence(req ProfileRequest) float64 {
	c := 75.0
	if req.Budget > 5 {
		c += 10
	}
	if req.Usage != "" && req.Priority != "" {
		c += 15
	}
	return math.Min(confidenceCeiling, c+r.jitter(10))
}

func (r *Recommender) jitter(bound float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64() * bound
}

// reasonFor builds a short explanation from at most two matching qualitative
// conditions.
func reasonFor(v catalog.Vehicle, req ProfileRequest) string {
	var reasons []string
	if v.Mileage > 20 {
		reasons = append(reasons, "excellent fuel efficiency")
	}
	if v.Safety >= 5 {
		reasons = append(reasons, "top safety rating")
	}
	if v.Emissions < 130 {
		reasons = append(reasons, "low emissions")
	}
	if req.Priority == PriorityFuel && v.Mileage > 22 {
		reasons = append(reasons, "matches fuel priority")
	}
	if req.Usage == UsageFamily && v.Safety >= 4 {
		reasons = append(reasons, "family-safe")
	}

	if len(reasons) == 0 {
		return "good overall value"
	}
	if len(reasons) > 2 {
		reasons = reasons[:2]
	}
	return strings.Join(reasons, " and ")
}
