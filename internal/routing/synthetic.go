package routing

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

var trafficLevels = []TrafficLevel{TrafficLight, TrafficModerate, TrafficHeavy}

var sampleIncidents = []Incident{
	{Location: "Western Express Highway", Type: "Heavy Traffic", Severity: "moderate"},
	{Location: "Mumbai-Pune Expressway", Type: "Construction Work", Severity: "low"},
	{Location: "Bandra-Worli Sea Link", Type: "Accident Cleared", Severity: "low"},
}

var sampleAlternatives = []Alternative{
	{Name: "Scenic Route", AddedTimeMin: 15, FuelSavingPct: 12, CO2ReductionPct: 8},
	{Name: "Highway Route", AddedTimeMin: -5, FuelSavingPct: -5, CO2ReductionPct: -2},
	{Name: "Local Roads", AddedTimeMin: 20, FuelSavingPct: 18, CO2ReductionPct: 15},
}

// Synthetic generates bounded-random routes and traffic without calling any
// external service. It satisfies RouteProvider, AlternativesProvider and
// TrafficProvider.
// The random source is injected so tests can fix the stream; the mutex
// guards it against concurrent handlers.
type Synthetic struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSynthetic creates a synthetic provider. A nil rng falls back to a
// time-seeded source.
func NewSynthetic(rng *rand.Rand) *Synthetic {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Synthetic{rng: rng}
}

// GetRoute returns a route with distance in [10000,60000) m and duration in
// [1200,4800) s. The origin, destination and mode are accepted for interface
// compatibility but do not influence the synthetic output.
func (s *Synthetic) GetRoute(_ context.Context, _, _, _ string) (*Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &Route{
		DistanceM:     s.rng.Intn(50000) + 10000,
		DurationS:     s.rng.Intn(3600) + 1200,
		Polyline:      "sample_polyline_data",
		FuelCost:      float64(s.rng.Intn(200) + 50),
		CO2Kg:         float64(s.rng.Intn(15) + 5),
		TrafficStatus: trafficLevels[s.rng.Intn(len(trafficLevels))],
	}, nil
}

// GetAlternatives returns one candidate with length in [8000,53000) m and
// duration in [1000,4200) s, an eco score in [70,100) and two further
// alternatives.
func (s *Synthetic) GetAlternatives(_ context.Context, _, _ string) (*AlternativesResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &AlternativesResult{
		Routes: []AlternativeRoute{{
			Sections: []RouteSection{{
				Summary: SectionSummary{
					LengthM:   s.rng.Intn(45000) + 8000,
					DurationS: s.rng.Intn(3200) + 1000,
				},
			}},
		}},
		EcoScore:          s.rng.Intn(30) + 70,
		AlternativeRoutes: 2,
	}, nil
}

// Status returns a random congestion level with the sample incident and
// alternative lists.
func (s *Synthetic) Status(_ context.Context) (*TrafficStatus, error) {
	s.mu.Lock()
	level := trafficLevels[s.rng.Intn(len(trafficLevels))]
	s.mu.Unlock()

	incidents := make([]Incident, len(sampleIncidents))
	copy(incidents, sampleIncidents)
	alternatives := make([]Alternative, len(sampleAlternatives))
	copy(alternatives, sampleAlternatives)

	return &TrafficStatus{
		Level:        level,
		Incidents:    incidents,
		Alternatives: alternatives,
		UpdatedAt:    time.Now().UTC(),
	}, nil
}
