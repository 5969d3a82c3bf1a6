package recommend

import (
	"math"
	"testing"

	sizing "github.com/KhiZeus/PlaneProject/internal/calc/sizing"
)

func transportMission() sizing.Input {
	return sizing.Input{
		Category:    "transport-jet",
		CruiseMach:  0.82,
		CruiseAltFt: 40000,
		AspectRatio: 10.0,
		TSFC:        0.45,
		LoiterMin:   45,
		FuelReserve: 0.05,
		FuelTrapped: 0.01,
		PayloadLbf:  30750,
		RangeNM:     3500,
	}
}

func TestWingArea(t *testing.T) {
	res, err := WingArea(WingAreaInput{
		Mission:    transportMission(),
		Cd0:        0.02,
		EngineType: "jet",
	})
	if err != nil {
		t.Fatalf("WingArea returned error: %v", err)
	}
	if res.WingAreaFt2 <= 0 || res.WingLoading <= 0 {
		t.Fatalf("area %v / loading %v, want both > 0", res.WingAreaFt2, res.WingLoading)
	}
	if math.Abs(res.WingAreaFt2*res.WingLoading-res.TakeoffLbf) > 1e-6*res.TakeoffLbf {
		t.Errorf("area * loading = %v, want takeoff weight %v",
			res.WingAreaFt2*res.WingLoading, res.TakeoffLbf)
	}
	wantSpan := math.Sqrt(res.WingAreaFt2 * 10.0)
	if math.Abs(res.SpanFt-wantSpan) > 1e-9 {
		t.Errorf("span = %v, want %v", res.SpanFt, wantSpan)
	}
}

func TestWingAreaInvalidInput(t *testing.T) {
	if _, err := WingArea(WingAreaInput{Mission: transportMission(), Cd0: 0}); err == nil {
		t.Error("expected an error for zero cd0")
	}
	if _, err := WingArea(WingAreaInput{
		Mission: transportMission(), Cd0: 0.02, EngineType: "rocket",
	}); err == nil {
		t.Error("expected an error for an unknown engine type")
	}
}
