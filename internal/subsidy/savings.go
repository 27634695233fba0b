package subsidy

import (
	"errors"
	"math"

	"github.com/automind-labs/ecodrive/internal/scoring"
)

// ErrNonPositiveSavings is returned when the reference economics produce no
// annual saving, which would make the payback period undefined.
var ErrNonPositiveSavings = errors.New("annual savings must be positive")

// Reference economics for the savings projection.
const (
	petrolEfficiencyKmPerL = 15.0
	petrolPricePerLitre    = 105.0
	petrolCo2KgPerLitre    = 2.31
	evEfficiencyKmPerKwh   = 4.0
	tariffPerKwh           = 8.0
)

// Annual distance assumption per usage tier, in km.
const (
	annualKmCity    = 12000.0
	annualKmHighway = 18000.0
	annualKmDefault = 15000.0
)

// Savings projects the cost of running a reference petrol car against an EV.
type Savings struct {
	AnnualSavings   float64 `json:"annualSavings"`
	FiveYearSavings float64 `json:"fiveYearSavings"`
	CO2SavedKg      float64 `json:"co2Savings"`
	PaybackYears    int     `json:"paybackPeriod"`
}

// ProjectSavings compares a reference petrol car's annual fuel cost against
// an EV's annual energy cost for the usage tier's distance. The budget is in
// lakh; payback is the budget amortized over the annual saving, rounded up.
func ProjectSavings(budgetLakh float64, usage scoring.Usage) (Savings, error) {
	annualKm := annualKmDefault
	switch usage {
	case scoring.UsageCity:
		annualKm = annualKmCity
	case scoring.UsageHighway:
		annualKm = annualKmHighway
	}
	return project(budgetLakh, annualKm, petrolPricePerLitre, tariffPerKwh)
}

func project(budgetLakh, annualKm, fuelPrice, tariff float64) (Savings, error) {
	petrolAnnualCost := (annualKm / petrolEfficiencyKmPerL) * fuelPrice
	evAnnualCost := (annualKm / evEfficiencyKmPerKwh) * tariff

	annual := petrolAnnualCost - evAnnualCost
	if annual <= 0 {
		return Savings{}, ErrNonPositiveSavings
	}

	return Savings{
		AnnualSavings:   annual,
		FiveYearSavings: annual * 5,
		CO2SavedKg:      (annualKm / petrolEfficiencyKmPerL) * petrolCo2KgPerLitre,
		PaybackYears:    int(math.Ceil(budgetLakh * 100000 / annual)),
	}, nil
}
