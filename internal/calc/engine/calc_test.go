package engine

import (
	"math"
	"testing"
)

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{CBHP: 0.45, SpeedFtS: 100, PropellerEfficiency: 0.75})
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	want := 0.45 * 100 / (550 * 0.75)
	if math.Abs(res.TSFC-want) > 1e-12 {
		t.Errorf("TSFC = %v, want %v", res.TSFC, want)
	}
}

func TestCalculateDefaultsEfficiency(t *testing.T) {
	res, err := Calculate(Input{CBHP: 0.45, SpeedFtS: 100})
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	want := 0.45 * 100 / (550 * 0.75)
	if math.Abs(res.TSFC-want) > 1e-12 {
		t.Errorf("TSFC with default efficiency = %v, want %v", res.TSFC, want)
	}
}

func TestCalculateInvalidInput(t *testing.T) {
	if _, err := Calculate(Input{CBHP: 0, SpeedFtS: 100}); err == nil {
		t.Error("expected an error for zero consumption")
	}
	if _, err := Calculate(Input{CBHP: 0.45, SpeedFtS: -5}); err == nil {
		t.Error("expected an error for negative speed")
	}
}
