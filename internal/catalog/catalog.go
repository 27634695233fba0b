package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// FuelType identifies the propulsion type of a vehicle.
type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelCNG      FuelType = "cng"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
)

// ErrUnknownFuelType is returned when a string does not name a catalog fuel type.
var ErrUnknownFuelType = errors.New("unknown vehicle type")

// ParseFuelType maps a request string onto the closed FuelType set.
func ParseFuelType(s string) (FuelType, error) {
	ft := FuelType(strings.ToLower(s))
	switch ft {
	case FuelPetrol, FuelDiesel, FuelCNG, FuelElectric, FuelHybrid:
		return ft, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFuelType, s)
}

// Vehicle is a combustion catalog entry. Price is in lakh, Mileage in km/l,
// Emissions in g/km and Maintenance in rupees per year. Entries are never
// mutated after load.
type Vehicle struct {
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	Price       float64 `json:"price"`
	Mileage     float64 `json:"mileage"`
	Safety      float64 `json:"safety"`
	Emissions   float64 `json:"emissions"`
	Maintenance float64 `json:"maintenance"`
}

// Name returns the display name of the vehicle.
func (v Vehicle) Name() string {
	if v.Model == "" {
		return v.Make
	}
	return v.Make + " " + v.Model
}

// ElectricVehicle is an EV catalog entry. Price is in lakh, ChargingHours is
// the full-charge time and Efficiency is km per kWh.
type ElectricVehicle struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	RangeKm       float64 `json:"range"`
	ChargingHours float64 `json:"charging"`
	Efficiency    float64 `json:"efficiency"`
}

var vehicles = []Vehicle{
	{Make: "Maruti", Model: "Swift", Price: 6.5, Mileage: 23.2, Safety: 4, Emissions: 120, Maintenance: 35000},
	{Make: "Maruti", Model: "Baleno", Price: 7.5, Mileage: 22.8, Safety: 4, Emissions: 115, Maintenance: 38000},
	{Make: "Maruti", Model: "Dzire", Price: 7.0, Mileage: 24.1, Safety: 4, Emissions: 118, Maintenance: 36000},
	{Make: "Maruti", Model: "Vitara Brezza", Price: 9.5, Mileage: 17.2, Safety: 4, Emissions: 145, Maintenance: 42000},
	{Make: "Hyundai", Model: "i20", Price: 8.5, Mileage: 20.5, Safety: 5, Emissions: 125, Maintenance: 40000},
	{Make: "Hyundai", Model: "Creta", Price: 12.5, Mileage: 16.8, Safety: 5, Emissions: 155, Maintenance: 45000},
	{Make: "Hyundai", Model: "Venue", Price: 9.0, Mileage: 18.2, Safety: 4, Emissions: 140, Maintenance: 41000},
	{Make: "Hyundai", Model: "Verna", Price: 11.5, Mileage: 19.1, Safety: 5, Emissions: 135, Maintenance: 43000},
	{Make: "Tata", Model: "Nexon", Price: 8.5, Mileage: 17.5, Safety: 5, Emissions: 142, Maintenance: 39000},
	{Make: "Tata", Model: "Harrier", Price: 16.0, Mileage: 14.2, Safety: 5, Emissions: 170, Maintenance: 48000},
	{Make: "Tata", Model: "Altroz", Price: 7.5, Mileage: 22.1, Safety: 5, Emissions: 115, Maintenance: 37000},
	{Make: "Tata", Model: "Safari", Price: 18.0, Mileage: 13.8, Safety: 5, Emissions: 180, Maintenance: 52000},
}

var electricVehicles = []ElectricVehicle{
	{Name: "Tata Nexon EV", Price: 16.5, RangeKm: 312, ChargingHours: 8.5, Efficiency: 4.0},
	{Name: "MG ZS EV", Price: 22.5, RangeKm: 419, ChargingHours: 7.0, Efficiency: 3.8},
	{Name: "Hyundai Kona Electric", Price: 24.0, RangeKm: 452, ChargingHours: 9.0, Efficiency: 3.5},
	{Name: "Mahindra eXUV300", Price: 18.0, RangeKm: 375, ChargingHours: 8.0, Efficiency: 4.2},
	{Name: "BYD Atto 3", Price: 35.0, RangeKm: 521, ChargingHours: 7.5, Efficiency: 3.2},
	{Name: "Tata Tigor EV", Price: 13.5, RangeKm: 306, ChargingHours: 8.0, Efficiency: 4.5},
}

// Vehicles returns a copy of the combustion catalog.
func Vehicles() []Vehicle {
	out := make([]Vehicle, len(vehicles))
	copy(out, vehicles)
	return out
}

// ElectricVehicles returns a copy of the EV catalog.
func ElectricVehicles() []ElectricVehicle {
	out := make([]ElectricVehicle, len(electricVehicles))
	copy(out, electricVehicles)
	return out
}
