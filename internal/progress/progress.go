// Package progress owns the process-lifetime user profile: trip history,
// cumulative carbon, eco score and badge unlocks. State is deliberately not
// durable; the profile resets with the process.
package progress

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/automind-labs/ecodrive/internal/catalog"
	"github.com/automind-labs/ecodrive/internal/emission"
)

// Badge names. A badge, once unlocked, is never removed.
const (
	BadgeEcoChampion   = "Eco Champion"
	BadgeGreenDriver   = "Green Driver"
	BadgeCarbonWarrior = "Carbon Warrior"
	BadgeRoadMaster    = "Road Master"
	BadgeEcoLegend     = "Eco Legend"
)

const (
	startingEcoScore   = 850
	carbonWarriorMaxKg = 500
	roadMasterTrips    = 50
	ecoLegendMinScore  = 1000
)

// TripRecord is one recorded trip. Records are append-only and immutable
// once appended.
type TripRecord struct {
	ID              uuid.UUID        `json:"id"`
	Date            time.Time        `json:"date"`
	DistanceKm      float64          `json:"distance"`
	VehicleType     catalog.FuelType `json:"vehicleType"`
	CarbonEmittedKg float64          `json:"carbonEmitted"`
	Route           string           `json:"route,omitempty"`
}

// TripSummary is the result of recording one trip. Trip and TotalTrips are
// captured inside the store's critical section, so they always describe the
// caller's own trip even under concurrent recording.
type TripSummary struct {
	Trip             TripRecord
	Footprint        emission.Footprint
	NewBadges        []string
	TotalFootprintKg float64
	TotalTrips       int
	EcoScore         float64
}

// Snapshot is a consistent copy of the profile state.
type Snapshot struct {
	Trips    []TripRecord
	CarbonKg float64
	EcoScore float64
	Badges   []string
}

// Store is the single owner of the mutable profile. All mutations go through
// the mutex so concurrent requests cannot violate the monotonic-footprint
// and idempotent-badge invariants.
type Store struct {
	mu       sync.Mutex
	trips    []TripRecord
	carbonKg float64
	ecoScore float64
	badges   []string
}

// NewStore creates a profile with the starting eco score and starter badges.
func NewStore() *Store {
	return &Store{
		ecoScore: startingEcoScore,
		badges:   []string{BadgeEcoChampion, BadgeGreenDriver},
	}
}

// RecordTrip computes the trip footprint, appends the trip, accumulates the
// emitted carbon, and evaluates badge thresholds against the post-trip
// state. Multiple badges may unlock in one call; a held badge is never
// re-added or re-reported.
func (s *Store) RecordTrip(distanceKm float64, fuel catalog.FuelType, route string) (TripSummary, error) {
	fp, err := emission.ComputeFootprint(distanceKm, fuel)
	if err != nil {
		return TripSummary{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := TripRecord{
		ID:              uuid.New(),
		Date:            time.Now().UTC(),
		DistanceKm:      distanceKm,
		VehicleType:     fuel,
		CarbonEmittedKg: fp.EmissionsKg,
		Route:           route,
	}
	s.trips = append(s.trips, rec)
	s.carbonKg += fp.EmissionsKg

	return TripSummary{
		Trip:             rec,
		Footprint:        fp,
		NewBadges:        s.unlockBadges(),
		TotalFootprintKg: s.carbonKg,
		TotalTrips:       len(s.trips),
		EcoScore:         s.ecoScore,
	}, nil
}

// unlockBadges evaluates the thresholds in fixed order. Caller holds the lock.
func (s *Store) unlockBadges() []string {
	unlocked := []string{}
	if s.carbonKg < carbonWarriorMaxKg && !s.holds(BadgeCarbonWarrior) {
		s.badges = append(s.badges, BadgeCarbonWarrior)
		unlocked = append(unlocked, BadgeCarbonWarrior)
	}
	if len(s.trips) >= roadMasterTrips && !s.holds(BadgeRoadMaster) {
		s.badges = append(s.badges, BadgeRoadMaster)
		unlocked = append(unlocked, BadgeRoadMaster)
	}
	if s.ecoScore > ecoLegendMinScore && !s.holds(BadgeEcoLegend) {
		s.badges = append(s.badges, BadgeEcoLegend)
		unlocked = append(unlocked, BadgeEcoLegend)
	}
	return unlocked
}

func (s *Store) holds(badge string) bool {
	for _, b := range s.badges {
		if b == badge {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the current profile state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	trips := make([]TripRecord, len(s.trips))
	copy(trips, s.trips)
	badges := make([]string, len(s.badges))
	copy(badges, s.badges)

	return Snapshot{
		Trips:    trips,
		CarbonKg: s.carbonKg,
		EcoScore: s.ecoScore,
		Badges:   badges,
	}
}

// Reset restores the starting profile. Test hook only.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips = nil
	s.carbonKg = 0
	s.ecoScore = startingEcoScore
	s.badges = []string{BadgeEcoChampion, BadgeGreenDriver}
}
