package scoring

import "fmt"

// Insights derives comparison sentences from a ranked result set using a
// single pass over the candidates. Fewer than two candidates yields an empty
// list, which is valid output, not an error.
func Insights(results []Comparison) []string {
	if len(results) < 2 {
		return []string{}
	}

	bestMileage := results[0].Vehicle
	mostAffordable := results[0].Vehicle
	safest := results[0].Vehicle
	for _, c := range results[1:] {
		if c.Vehicle.Mileage > bestMileage.Mileage {
			bestMileage = c.Vehicle
		}
		if c.Vehicle.Price < mostAffordable.Price {
			mostAffordable = c.Vehicle
		}
		if c.Vehicle.Safety > safest.Safety {
			safest = c.Vehicle
		}
	}

	return []string{
		fmt.Sprintf("%s offers the best fuel efficiency at %.1f km/l", bestMileage.Name(), bestMileage.Mileage),
		fmt.Sprintf("%s is the most budget-friendly option at ₹%.1f lakhs", mostAffordable.Name(), mostAffordable.Price),
		fmt.Sprintf("%s provides the highest safety rating of %.0f/5", safest.Name(), safest.Safety),
	}
}
