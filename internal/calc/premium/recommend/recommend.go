package recommend

import (
	"fmt"
	"math"

	atmosphere "github.com/KhiZeus/PlaneProject/internal/calc/atmosphere"
	sizing "github.com/KhiZeus/PlaneProject/internal/calc/sizing"
	wingload "github.com/KhiZeus/PlaneProject/internal/calc/wingload"
)

const ftToM = 0.3048

type WingAreaInput struct {
	Mission    sizing.Input `json:"mission"`
	Cd0        float64      `json:"cd0"`
	EngineType string       `json:"engine_type"`
}

type WingAreaResult struct {
	TakeoffLbf  float64 `json:"takeoff_lbf"`
	WingLoading float64 `json:"wing_loading_lbf_ft2"`
	WingAreaFt2 float64 `json:"wing_area_ft2"`
	SpanFt      float64 `json:"span_ft"`
	Notes       string  `json:"notes"`
}

// WingArea sizes the wing from the converged takeoff weight and the optimal
// cruise wing loading for the mission's engine type.
func WingArea(in WingAreaInput) (WingAreaResult, error) {
	if in.Cd0 <= 0 {
		return WingAreaResult{}, fmt.Errorf("invalid input")
	}

	weights, err := sizing.Calculate(in.Mission)
	if err != nil {
		return WingAreaResult{}, err
	}

	speed := in.Mission.CruiseMach *
		atmosphere.Evaluate(in.Mission.CruiseAltFt*ftToM).SoundSpeedMS
	loading, err := wingload.Calculate(wingload.Input{
		Constraint:              wingload.ConstraintCruise,
		AltitudeFt:              in.Mission.CruiseAltFt,
		ZeroLiftDragCoefficient: in.Cd0,
		AspectRatio:             in.Mission.AspectRatio,
		SpeedFtS:                speed,
		EngineType:              in.EngineType,
	})
	if err != nil {
		return WingAreaResult{}, err
	}

	area := weights.TakeoffLbf / loading.WingLoading
	return WingAreaResult{
		TakeoffLbf:  weights.TakeoffLbf,
		WingLoading: loading.WingLoading,
		WingAreaFt2: area,
		SpanFt:      math.Sqrt(area * in.Mission.AspectRatio),
		Notes:       "Wing sized for the optimal cruise loading at the converged takeoff weight.",
	}, nil
}
