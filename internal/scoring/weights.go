package scoring

import (
	"fmt"
	"math"
)

// WeightSet defines the relative importance of each comparison attribute.
// All weights must sum to 1.0 (±0.001 tolerance).
type WeightSet struct {
	Price       float64
	Mileage     float64
	Safety      float64
	Emissions   float64
	Maintenance float64
}

// DefaultWeights returns the standard weight distribution.
func DefaultWeights() WeightSet {
	return WeightSet{
		Price:       0.25,
		Mileage:     0.30,
		Safety:      0.25,
		Emissions:   0.15,
		Maintenance: 0.05,
	}
}

// Sum returns the total of all weights.
func (w WeightSet) Sum() float64 {
	return w.Price + w.Mileage + w.Safety + w.Emissions + w.Maintenance
}

// Validate checks that weights sum to 1.0 and none are negative.
func (w WeightSet) Validate() error {
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	for _, v := range []float64{w.Price, w.Mileage, w.Safety, w.Emissions, w.Maintenance} {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	return nil
}
