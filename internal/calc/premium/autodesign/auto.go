package autodesign

import (
	"fmt"

	atmosphere "github.com/KhiZeus/PlaneProject/internal/calc/atmosphere"
	drag "github.com/KhiZeus/PlaneProject/internal/calc/drag"
	recommend "github.com/KhiZeus/PlaneProject/internal/calc/premium/recommend"
	sizing "github.com/KhiZeus/PlaneProject/internal/calc/sizing"
)

const ftToM = 0.3048

type ConceptInput struct {
	Mission    sizing.Input `json:"mission"`
	Cd0        float64      `json:"cd0"`
	EngineType string       `json:"engine_type"`

	LeadingEdgeSweepDeg float64 `json:"leading_edge_sweep_deg"`
	RelativeThickness   float64 `json:"relative_thickness"`
	XMaxThickness       float64 `json:"x_max_thickness"`
	TaperRatio          float64 `json:"taper_ratio"`
	InterferenceFactor  float64 `json:"interference_factor"`

	MaxDiameterFt     float64 `json:"max_diameter_ft"`
	TotalLengthFt     float64 `json:"total_length_ft"`
	ConstantSectionFt float64 `json:"constant_section_ft"`
	RoughnessFt       float64 `json:"roughness_ft"`
}

type ConceptResult struct {
	Weights sizing.Result `json:"weights"`

	WingAreaFt2 float64 `json:"wing_area_ft2"`
	SpanFt      float64 `json:"span_ft"`
	WingLoading float64 `json:"wing_loading_lbf_ft2"`

	WingDragLbf           float64 `json:"wing_drag_lbf"`
	WingZeroLiftDragLbf   float64 `json:"wing_zero_lift_drag_lbf"`
	FuselageDragLbf       float64 `json:"fuselage_drag_lbf"`
	FuselageWettedAreaFt2 float64 `json:"fuselage_wetted_area_ft2"`

	Notes string `json:"notes"`
}

// Concept runs the full conceptual chain: weight closure, wing sizing from
// the optimal cruise loading, then the cruise drag of the sized wing and the
// fuselage.
func Concept(in ConceptInput) (ConceptResult, error) {
	if in.RelativeThickness <= 0 || in.TaperRatio <= 0 {
		return ConceptResult{}, fmt.Errorf("invalid input")
	}

	weights, err := sizing.Calculate(in.Mission)
	if err != nil {
		return ConceptResult{}, err
	}

	wing, err := recommend.WingArea(recommend.WingAreaInput{
		Mission:    in.Mission,
		Cd0:        in.Cd0,
		EngineType: in.EngineType,
	})
	if err != nil {
		return ConceptResult{}, err
	}

	speed := in.Mission.CruiseMach *
		atmosphere.Evaluate(in.Mission.CruiseAltFt*ftToM).SoundSpeedMS
	wingDrag, err := drag.Wing(drag.WingInput{
		SpeedFtS:            speed,
		AltitudeFt:          in.Mission.CruiseAltFt,
		LeadingEdgeSweepDeg: in.LeadingEdgeSweepDeg,
		WingAreaFt2:         wing.WingAreaFt2,
		AspectRatio:         in.Mission.AspectRatio,
		RelativeThickness:   in.RelativeThickness,
		XMaxThickness:       in.XMaxThickness,
		TaperRatio:          in.TaperRatio,
		InterferenceFactor:  in.InterferenceFactor,
		CruiseWeightLbf:     weights.TakeoffLbf,
	})
	if err != nil {
		return ConceptResult{}, err
	}

	fuselageDrag, err := drag.Fuselage(drag.FuselageInput{
		Mach:              in.Mission.CruiseMach,
		AltitudeFt:        in.Mission.CruiseAltFt,
		WingAreaFt2:       wing.WingAreaFt2,
		MaxDiameterFt:     in.MaxDiameterFt,
		TotalLengthFt:     in.TotalLengthFt,
		ConstantSectionFt: in.ConstantSectionFt,
		RoughnessFt:       in.RoughnessFt,
	})
	if err != nil {
		return ConceptResult{}, err
	}

	return ConceptResult{
		Weights:               weights,
		WingAreaFt2:           wing.WingAreaFt2,
		SpanFt:                wing.SpanFt,
		WingLoading:           wing.WingLoading,
		WingDragLbf:           wingDrag.TotalDragLbf,
		WingZeroLiftDragLbf:   wingDrag.ZeroLiftDragLbf,
		FuselageDragLbf:       fuselageDrag.DragLbf,
		FuselageWettedAreaFt2: fuselageDrag.WettedAreaFt2,
		Notes:                 "One-shot concept: weight closure, wing sizing, cruise drag buildup.",
	}, nil
}
