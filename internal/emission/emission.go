// Package emission converts trip distance and fuel type into consumed fuel,
// emitted carbon, running cost and a per-trip eco score.
package emission

import (
	"errors"
	"fmt"
	"math"

	"github.com/automind-labs/ecodrive/internal/catalog"
)

// ErrNonPositiveDistance is returned when a footprint is requested for a
// zero or negative distance.
var ErrNonPositiveDistance = errors.New("distance must be positive")

// Footprint is the computed result for a single trip.
type Footprint struct {
	EmissionsKg  float64 `json:"emissions"`
	FuelConsumed float64 `json:"fuelConsumed"`
	Cost         float64 `json:"cost"`
	EcoScore     float64 `json:"ecoScore"`
}

// fuelProfile holds the fixed emission factor (kg per unit consumed) and
// efficiency (km per unit) for one fuel type. Electric units are kWh, the
// rest are litres.
type fuelProfile struct {
	factor     float64
	efficiency float64
}

var fuelProfiles = map[catalog.FuelType]fuelProfile{
	catalog.FuelPetrol:   {factor: 2.31, efficiency: 15},
	catalog.FuelDiesel:   {factor: 2.68, efficiency: 18},
	catalog.FuelCNG:      {factor: 1.85, efficiency: 20},
	catalog.FuelElectric: {factor: 0.5, efficiency: 4},
	catalog.FuelHybrid:   {factor: 1.5, efficiency: 25},
}

const (
	fuelPricePerLitre = 105 // rupees
	tariffPerKwh      = 8   // rupees
)

// ComputeFootprint returns the footprint of driving distanceKm with the
// given fuel type.
func ComputeFootprint(distanceKm float64, fuel catalog.FuelType) (Footprint, error) {
	if distanceKm <= 0 {
		return Footprint{}, fmt.Errorf("%w: got %v", ErrNonPositiveDistance, distanceKm)
	}
	p, ok := fuelProfiles[fuel]
	if !ok {
		return Footprint{}, fmt.Errorf("%w: %q", catalog.ErrUnknownFuelType, fuel)
	}

	consumed := distanceKm / p.efficiency
	emissions := consumed * p.factor

	cost := consumed * fuelPricePerLitre
	if fuel == catalog.FuelElectric {
		cost = consumed * tariffPerKwh
	}

	return Footprint{
		EmissionsKg:  emissions,
		FuelConsumed: consumed,
		Cost:         cost,
		EcoScore:     math.Max(0, 100-(emissions/distanceKm)*100),
	}, nil
}
