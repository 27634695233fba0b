// Package subsidy resolves per-region EV purchase subsidies and computes
// subsidy-adjusted pricing, suitability and ownership economics.
package subsidy

import (
	"math"
	"sort"
	"strings"

	"github.com/automind-labs/ecodrive/internal/catalog"
	"github.com/automind-labs/ecodrive/internal/scoring"
)

// CentralAmount is the fixed central-government subsidy in lakh.
const CentralAmount = 1.5

// regionFallback applies when a region is not in the table. This fallback is
// deliberate; every other unknown-key lookup in the service fails instead.
const regionFallback = 0.5

var regionalAmounts = map[string]float64{
	"maharashtra": 2.5,
	"delhi":       1.5,
	"karnataka":   2.0,
	"gujarat":     1.5,
	"rajasthan":   1.0,
	"telangana":   1.2,
	"kerala":      1.0,
}

// Profile is the resolved subsidy split for one region.
type Profile struct {
	Region   string  `json:"region"`
	Central  float64 `json:"central"`
	Regional float64 `json:"regional"`
	Total    float64 `json:"total"`
}

// Resolve looks up the regional subsidy amount (case-insensitive) and
// combines it with the central amount.
func Resolve(region string) Profile {
	amount, ok := regionalAmounts[strings.ToLower(region)]
	if !ok {
		amount = regionFallback
	}
	return Profile{
		Region:   region,
		Central:  CentralAmount,
		Regional: amount,
		Total:    CentralAmount + amount,
	}
}

// Info is the subsidy summary returned alongside EV recommendations.
type Info struct {
	Central    float64  `json:"central"`
	State      float64  `json:"state"`
	Additional []string `json:"additional"`
	Validity   string   `json:"validity"`
}

// InfoFor returns the subsidy summary for a region.
func InfoFor(region string) Info {
	return Info{
		Central:    CentralAmount,
		State:      Resolve(region).Regional,
		Additional: []string{"FAME II benefits", "Registration fee waiver", "Road tax exemption"},
		Validity:   "2025-2027",
	}
}

// Suitability scores how well an EV fits a usage pattern: base 50, plus
// usage-specific range bonuses, plus charging and efficiency bonuses,
// capped at 100.
func Suitability(ev catalog.ElectricVehicle, usage scoring.Usage) float64 {
	score := 50.0
	if usage == scoring.UsageCity && ev.RangeKm > 300 {
		score += 30
	}
	if usage == scoring.UsageHighway && ev.RangeKm > 400 {
		score += 35
	}
	if usage == scoring.UsageMixed && ev.RangeKm > 350 {
		score += 25
	}
	if ev.ChargingHours < 8 {
		score += 15
	}
	if ev.Efficiency > 4 {
		score += 10
	}
	return math.Min(100, score)
}

// EVOption is one subsidy-adjusted, suitability-scored EV candidate.
type EVOption struct {
	catalog.ElectricVehicle
	FinalPrice       float64 `json:"finalPrice"`
	TotalSubsidy     float64 `json:"totalSubsidy"`
	SuitabilityScore float64 `json:"suitabilityScore"`
}

// Recommendations applies the region's subsidy to every catalog EV, keeps
// those whose net price fits the budget, and orders them by descending
// suitability. The returned set never contains an option with FinalPrice
// above the budget.
func Recommendations(evs []catalog.ElectricVehicle, region string, budget float64, usage scoring.Usage) []EVOption {
	p := Resolve(region)

	options := []EVOption{}
	for _, ev := range evs {
		final := ev.Price - p.Total
		if final > budget {
			continue
		}
		options = append(options, EVOption{
			ElectricVehicle:  ev,
			FinalPrice:       final,
			TotalSubsidy:     p.Total,
			SuitabilityScore: Suitability(ev, usage),
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].SuitabilityScore > options[j].SuitabilityScore
	})
	return options
}
