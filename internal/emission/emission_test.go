package emission

import (
	"errors"
	"math"
	"testing"

	"github.com/automind-labs/ecodrive/internal/catalog"
)

func TestComputeFootprintPetrol(t *testing.T) {
	fp, err := ComputeFootprint(150, catalog.FuelPetrol)
	if err != nil {
		t.Fatalf("ComputeFootprint failed: %v", err)
	}
	if math.Abs(fp.FuelConsumed-10) > 1e-9 {
		t.Errorf("consumed: got %f, want 10", fp.FuelConsumed)
	}
	if math.Abs(fp.EmissionsKg-23.1) > 1e-9 {
		t.Errorf("emissions: got %f, want 23.1", fp.EmissionsKg)
	}
	if math.Abs(fp.Cost-1050) > 1e-9 {
		t.Errorf("cost: got %f, want 1050", fp.Cost)
	}
	wantEco := 100 - (23.1/150)*100
	if math.Abs(fp.EcoScore-wantEco) > 1e-9 {
		t.Errorf("eco score: got %f, want %f", fp.EcoScore, wantEco)
	}
}

func TestComputeFootprintElectricUsesTariff(t *testing.T) {
	fp, err := ComputeFootprint(100, catalog.FuelElectric)
	if err != nil {
		t.Fatalf("ComputeFootprint failed: %v", err)
	}
	if math.Abs(fp.FuelConsumed-25) > 1e-9 {
		t.Errorf("consumed: got %f, want 25 kWh", fp.FuelConsumed)
	}
	if math.Abs(fp.Cost-200) > 1e-9 {
		t.Errorf("cost: got %f, want 200 (tariff, not fuel price)", fp.Cost)
	}
}

func TestComputeFootprintAllFuelTypes(t *testing.T) {
	for _, fuel := range []catalog.FuelType{
		catalog.FuelPetrol, catalog.FuelDiesel, catalog.FuelCNG,
		catalog.FuelElectric, catalog.FuelHybrid,
	} {
		t.Run(string(fuel), func(t *testing.T) {
			fp, err := ComputeFootprint(50, fuel)
			if err != nil {
				t.Fatalf("ComputeFootprint failed: %v", err)
			}
			if fp.EmissionsKg <= 0 || fp.FuelConsumed <= 0 || fp.Cost <= 0 {
				t.Errorf("expected positive outputs, got %+v", fp)
			}
			if fp.EcoScore < 0 || fp.EcoScore > 100 {
				t.Errorf("eco score out of range: %f", fp.EcoScore)
			}
		})
	}
}

func TestComputeFootprintNonPositiveDistance(t *testing.T) {
	for _, d := range []float64{0, -1, -250} {
		if _, err := ComputeFootprint(d, catalog.FuelPetrol); !errors.Is(err, ErrNonPositiveDistance) {
			t.Errorf("distance %v: expected ErrNonPositiveDistance, got %v", d, err)
		}
	}
}

func TestComputeFootprintUnknownFuel(t *testing.T) {
	if _, err := ComputeFootprint(10, catalog.FuelType("steam")); !errors.Is(err, catalog.ErrUnknownFuelType) {
		t.Errorf("expected ErrUnknownFuelType, got %v", err)
	}
}
