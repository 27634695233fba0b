package scoring

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automind-labs/ecodrive/internal/catalog"
)

func fixedRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestParsePriority(t *testing.T) {
	for _, s := range []string{"", "fuel", "performance", "safety", "features", "Fuel"} {
		if _, err := ParsePriority(s); err != nil {
			t.Errorf("ParsePriority(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePriority("speed"); err == nil {
		t.Error("expected error for unknown priority")
	}
}

func TestParseUsage(t *testing.T) {
	for _, s := range []string{"", "city", "highway", "family", "mixed", "CITY"} {
		if _, err := ParseUsage(s); err != nil {
			t.Errorf("ParseUsage(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseUsage("offroad"); err == nil {
		t.Error("expected error for unknown usage")
	}
}

func TestProfileScorePriorityBranches(t *testing.T) {
	r := NewRecommender(nil, fixedRand())
	v := catalog.Vehicle{Price: 10, Mileage: 20, Safety: 4, Emissions: 140, Maintenance: 40000}

	tests := []struct {
		name string
		req  ProfileRequest
		want float64
	}{
		{"fuel", ProfileRequest{Budget: 20, Priority: PriorityFuel, FamilySize: 4}, 20 * 4},
		{"performance", ProfileRequest{Budget: 20, Priority: PriorityPerformance, FamilySize: 4}, (10.0 / 20) * 50},
		{"safety", ProfileRequest{Budget: 20, Priority: PrioritySafety, FamilySize: 4}, 4 * 18},
		{"features", ProfileRequest{Budget: 20, Priority: PriorityFeatures, FamilySize: 4}, 4*10 + (10.0/20)*30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ProfileScore(v, tt.req); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %f, want %f", got, tt.want)
			}
		})
	}
}

func TestProfileScoreUsageBonuses(t *testing.T) {
	r := NewRecommender(nil, fixedRand())
	v := catalog.Vehicle{Price: 8, Mileage: 22, Safety: 4, Emissions: 120, Maintenance: 35000}
	base := ProfileRequest{Budget: 20, FamilySize: 4}

	tests := []struct {
		usage Usage
		want  float64
	}{
		{UsageCity, 15},    // mileage > 20
		{UsageHighway, 10}, // mileage > 15
		{UsageFamily, 20},  // safety >= 4
		{UsageMixed, 44},   // mileage * 2
	}
	for _, tt := range tests {
		t.Run(string(tt.usage), func(t *testing.T) {
			req := base
			req.Usage = tt.usage
			if got := r.ProfileScore(v, req); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %f, want %f", got, tt.want)
			}
		})
	}
}

func TestProfileScoreFamilySizeBrackets(t *testing.T) {
	r := NewRecommender(nil, fixedRand())
	big := catalog.Vehicle{Price: 12, Mileage: 10, Safety: 3}
	small := catalog.Vehicle{Price: 7, Mileage: 10, Safety: 3}

	if got := r.ProfileScore(big, ProfileRequest{Budget: 20, FamilySize: 5}); got != 10 {
		t.Errorf("large family + large car: got %f, want 10", got)
	}
	if got := r.ProfileScore(small, ProfileRequest{Budget: 20, FamilySize: 2}); got != 5 {
		t.Errorf("small family + small car: got %f, want 5", got)
	}
	if got := r.ProfileScore(big, ProfileRequest{Budget: 20, FamilySize: 4}); got != 0 {
		t.Errorf("default family size: got %f, want 0", got)
	}
}

func TestRecommendFiltersByBudget(t *testing.T) {
	r := NewRecommender(catalog.Vehicles(), fixedRand())
	recs := r.Recommend(ProfileRequest{Budget: 8, Usage: UsageCity, Priority: PriorityFuel})
	if len(recs) == 0 {
		t.Fatal("expected at least one recommendation under budget 8")
	}
	for _, rec := range recs {
		if rec.Vehicle.Price > 8 {
			t.Errorf("%s priced %f exceeds budget 8", rec.Vehicle.Name(), rec.Vehicle.Price)
		}
	}
}

func TestRecommendReturnsTopFive(t *testing.T) {
	r := NewRecommender(catalog.Vehicles(), fixedRand())
	recs := r.Recommend(ProfileRequest{Budget: 50, Usage: UsageMixed, Priority: PrioritySafety})
	if len(recs) != 5 {
		t.Fatalf("expected 5 recommendations, got %d", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Errorf("order violated at %d: %f > %f", i, recs[i].Score, recs[i-1].Score)
		}
	}
}

func TestRecommendConfidenceBounds(t *testing.T) {
	r := NewRecommender(catalog.Vehicles(), fixedRand())
	recs := r.Recommend(ProfileRequest{Budget: 50, Usage: UsageCity, Priority: PriorityFuel})
	for _, rec := range recs {
		if rec.Confidence > confidenceCeiling {
			t.Errorf("confidence %f exceeds ceiling", rec.Confidence)
		}
		if rec.Confidence < math.Min(confidenceCeiling, rec.Score) {
			t.Errorf("confidence %f below score %f", rec.Confidence, rec.Score)
		}
		if rec.Confidence >= rec.Score+20 {
			t.Errorf("jitter out of bound: confidence %f, score %f", rec.Confidence, rec.Score)
		}
	}
}

func TestRecommendEmptyWhenNothingAffordable(t *testing.T) {
	r := NewRecommender(catalog.Vehicles(), fixedRand())
	if recs := r.Recommend(ProfileRequest{Budget: 1, Priority: PriorityFuel}); len(recs) != 0 {
		t.Errorf("expected no recommendations under budget 1, got %d", len(recs))
	}
}

func TestAggregateConfidence(t *testing.T) {
	r := NewRecommender(nil, fixedRand())

	full := r.Confidence(ProfileRequest{Budget: 10, Usage: UsageCity, Priority: PriorityFuel})
	if full > 95 {
		t.Errorf("confidence %f exceeds ceiling", full)
	}
	if full < 95 { // 75 + 10 + 15 = 100, capped before jitter matters
		t.Errorf("full profile confidence %f, want cap 95", full)
	}

	sparse := r.Confidence(ProfileRequest{Budget: 3})
	if sparse < 75 || sparse >= 85 {
		t.Errorf("sparse profile confidence %f, want [75, 85)", sparse)
	}
}

func TestReasonFor(t *testing.T) {
	tests := []struct {
		name string
		v    catalog.Vehicle
		req  ProfileRequest
		want string
	}{
		{
			"two reasons joined",
			catalog.Vehicle{Mileage: 23, Safety: 5, Emissions: 150},
			ProfileRequest{},
			"excellent fuel efficiency and top safety rating",
		},
		{
			"capped at two",
			catalog.Vehicle{Mileage: 23, Safety: 5, Emissions: 120},
			ProfileRequest{Priority: PriorityFuel, Usage: UsageFamily},
			"excellent fuel efficiency and top safety rating",
		},
		{
			"single reason",
			catalog.Vehicle{Mileage: 10, Safety: 3, Emissions: 125},
			ProfileRequest{},
			"low emissions",
		},
		{
			"default",
			catalog.Vehicle{Mileage: 10, Safety: 3, Emissions: 180},
			ProfileRequest{},
			"good overall value",
		},
		{
			"family safe",
			catalog.Vehicle{Mileage: 10, Safety: 4, Emissions: 180},
			ProfileRequest{Usage: UsageFamily},
			"family-safe",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reasonFor(tt.v, tt.req); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
