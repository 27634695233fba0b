package progress

import "github.com/automind-labs/ecodrive/internal/catalog"

// carbonBaselineKg is the yearly reference footprint the dashboard measures
// savings against.
const carbonBaselineKg = 2000

// CarbonSaved reports how far the profile sits under the reference
// footprint, floored at zero.
func (s Snapshot) CarbonSaved() float64 {
	saved := carbonBaselineKg - s.CarbonKg
	if saved < 0 {
		return 0
	}
	return saved
}

// FuelSavings estimates the rupees saved by trips taken on cheaper fuels.
func FuelSavings(trips []TripRecord) float64 {
	var saved float64
	for _, trip := range trips {
		switch trip.VehicleType {
		case catalog.FuelElectric:
			saved += trip.DistanceKm * 3
		case catalog.FuelCNG:
			saved += trip.DistanceKm * 1.5
		}
	}
	return saved
}

// RecentTrips returns up to the last n trips, oldest first.
func (s Snapshot) RecentTrips(n int) []TripRecord {
	if len(s.Trips) <= n {
		return s.Trips
	}
	return s.Trips[len(s.Trips)-n:]
}

var baseTips = []string{
	"Plan your routes during off-peak hours to save 20% on fuel",
	"Regular maintenance can improve efficiency by 10%",
	"Consider carpooling for trips over 20km",
	"Check tire pressure monthly for optimal fuel economy",
}

// Tips returns up to three driving tips, personalized from the profile.
func Tips(s Snapshot) []string {
	tips := make([]string, len(baseTips))
	copy(tips, baseTips)

	if s.EcoScore > 800 {
		tips = append(tips, "You're an eco-champion! Share your tips with the community")
	}
	if len(s.Trips) > 30 {
		tips = append(tips, "Frequent traveler detected - consider hybrid or EV options")
	}

	return tips[:3]
}

// MonthlyTrends is a six-month cost and emissions series for the dashboard.
type MonthlyTrends struct {
	Months    []string `json:"months"`
	FuelCosts []int    `json:"fuelCosts"`
	Emissions []int    `json:"emissions"`
	Trend     string   `json:"trend"`
}

// SampleTrends returns the reference trend series. Real history is out of
// scope while the profile is process-lifetime only.
func SampleTrends() MonthlyTrends {
	return MonthlyTrends{
		Months:    []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
		FuelCosts: []int{3200, 2950, 3100, 2800, 2650, 2400},
		Emissions: []int{145, 135, 140, 128, 120, 115},
		Trend:     "improving",
	}
}
