package subsidy

import "strings"

// ChargingStation is a nearby charging point suggestion.
type ChargingStation struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	DistanceKm float64 `json:"distance"`
}

var stationsByRegion = map[string][]ChargingStation{
	"maharashtra": {
		{Name: "Tata Power Station - Bandra", Type: "Fast Charging", DistanceKm: 2.5},
		{Name: "Fortum Station - Andheri", Type: "Standard", DistanceKm: 4.2},
		{Name: "Ather Grid - Powai", Type: "Fast Charging", DistanceKm: 6.1},
	},
	"delhi": {
		{Name: "Delhi Metro Station - CP", Type: "Fast Charging", DistanceKm: 1.8},
		{Name: "NDMC Station - Khan Market", Type: "Standard", DistanceKm: 3.5},
		{Name: "Tata Power - Gurgaon", Type: "Fast Charging", DistanceKm: 15.2},
	},
}

var genericStations = []ChargingStation{
	{Name: "Public Charging Hub", Type: "Standard", DistanceKm: 5.0},
	{Name: "Fast Charge Station", Type: "Fast Charging", DistanceKm: 8.5},
}

// Stations returns the charging stations known for a region, or a generic
// pair when the region has no curated list.
func Stations(region string) []ChargingStation {
	if s, ok := stationsByRegion[strings.ToLower(region)]; ok {
		out := make([]ChargingStation, len(s))
		copy(out, s)
		return out
	}
	out := make([]ChargingStation, len(genericStations))
	copy(out, genericStations)
	return out
}
