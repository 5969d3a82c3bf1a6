package drag

import (
	"fmt"
	"math"

	atmosphere "github.com/KhiZeus/PlaneProject/internal/calc/atmosphere"
)

const ftToM = 0.3048

type FuselageInput struct {
	Mach              float64 `json:"mach"`
	AltitudeFt        float64 `json:"altitude_ft"`
	WingAreaFt2       float64 `json:"wing_area_ft2"`
	MaxDiameterFt     float64 `json:"max_diameter_ft"`
	TotalLengthFt     float64 `json:"total_length_ft"`
	ConstantSectionFt float64 `json:"constant_section_ft"`
	RoughnessFt       float64 `json:"roughness_ft"`
}

type FuselageResult struct {
	DragLbf       float64 `json:"drag_lbf"`
	WettedAreaFt2 float64 `json:"wetted_area_ft2"`
	Notes         string  `json:"notes"`
}

// Fuselage estimates the viscous drag of a Sears-Haack style fuselage with
// Raymer's component buildup: wetted area by quadrature of the body
// perimeter, flat-plate skin friction with a roughness cutoff Reynolds
// number, and a slenderness form factor.
func Fuselage(in FuselageInput) (FuselageResult, error) {
	if in.Mach <= 0 || in.WingAreaFt2 <= 0 || in.MaxDiameterFt <= 0 ||
		in.TotalLengthFt <= 0 || in.RoughnessFt <= 0 {
		return FuselageResult{}, fmt.Errorf("invalid input")
	}
	if in.ConstantSectionFt < 0 || in.ConstantSectionFt >= in.TotalLengthFt {
		return FuselageResult{}, fmt.Errorf("constant section must be shorter than the fuselage")
	}

	atm := atmosphere.Evaluate(in.AltitudeFt * ftToM)
	density := atm.DensityKgM3
	viscosity := atm.ViscosityPaS

	// Nose and tail follow a Sears-Haack perimeter, the midbody is a
	// cylinder of the maximum diameter.
	lVar := in.TotalLengthFt - in.ConstantSectionFt
	half := lVar / 2
	perimeter := func(x float64) float64 {
		return 2 * math.Pi * in.MaxDiameterFt / 2 *
			math.Pow(1-math.Pow(x/half, 2), 0.75)
	}
	sNose := integrate(perimeter, 0, half, 200)
	sTail := sNose
	sMid := math.Pi * in.MaxDiameterFt * in.ConstantSectionFt
	sWet := sNose + sMid + sTail

	re := density * in.Mach * in.TotalLengthFt / viscosity
	var reCutoff float64
	if in.Mach < 0.7 {
		reCutoff = 38.21 * math.Pow(in.TotalLengthFt/in.RoughnessFt, 1.053)
	} else {
		reCutoff = 44.62 * math.Pow(in.TotalLengthFt/in.RoughnessFt, 1.053) * math.Pow(in.Mach, 1.16)
	}
	rex := math.Min(re, reCutoff)

	cf := flatPlateCf(rex, in.Mach)

	f := in.TotalLengthFt / in.MaxDiameterFt
	formFactor := 1 + 60/math.Pow(f, 3) + f/400

	const q = 1.0 // interference factor, isolated body
	cd := cf * formFactor * q * sWet / in.WingAreaFt2
	d := cd * (0.5 * density * in.Mach * in.Mach * in.WingAreaFt2)

	return FuselageResult{
		DragLbf:       d,
		WettedAreaFt2: sWet,
		Notes:         "Fuselage friction drag, Raymer component buildup.",
	}, nil
}

type WingInput struct {
	SpeedFtS            float64 `json:"speed_ft_s"`
	AltitudeFt          float64 `json:"altitude_ft"`
	LeadingEdgeSweepDeg float64 `json:"leading_edge_sweep_deg"`
	WingAreaFt2         float64 `json:"wing_area_ft2"`
	AspectRatio         float64 `json:"aspect_ratio"`
	RelativeThickness   float64 `json:"relative_thickness"`
	XMaxThickness       float64 `json:"x_max_thickness"`
	TaperRatio          float64 `json:"taper_ratio"`
	InterferenceFactor  float64 `json:"interference_factor"`
	CruiseWeightLbf     float64 `json:"cruise_weight_lbf"`
}

type WingResult struct {
	TotalDragLbf    float64 `json:"total_drag_lbf"`
	ZeroLiftDragLbf float64 `json:"zero_lift_drag_lbf"`
	Notes           string  `json:"notes"`
}

// Wing evaluates the wing profile and induced drag in cruise, after Corke
// chapter 4.
func Wing(in WingInput) (WingResult, error) {
	if in.SpeedFtS <= 0 || in.WingAreaFt2 <= 0 || in.AspectRatio <= 0 ||
		in.RelativeThickness <= 0 || in.XMaxThickness <= 0 || in.TaperRatio <= 0 ||
		in.CruiseWeightLbf <= 0 {
		return WingResult{}, fmt.Errorf("invalid input")
	}
	if in.InterferenceFactor <= 0 {
		in.InterferenceFactor = 1.0
	}

	atm := atmosphere.Evaluate(in.AltitudeFt * ftToM)
	density := atm.DensityKgM3
	viscosity := atm.ViscosityPaS

	span := math.Sqrt(in.WingAreaFt2 * in.AspectRatio)
	rootChord := 2 * span / (in.AspectRatio * (1 + in.TaperRatio))
	meanChord := (2 * rootChord * (1 + in.TaperRatio + in.TaperRatio*in.TaperRatio)) /
		(3 * (1 + in.TaperRatio))

	sweepLE := radians(in.LeadingEdgeSweepDeg)
	midChordSweep := math.Atan(math.Tan(sweepLE) - 0.5*(2*rootChord/span)*(1-in.TaperRatio))
	maxThicknessSweep := math.Atan(math.Tan(sweepLE) - in.XMaxThickness*(2*rootChord/span)*(1-in.TaperRatio))

	re := density * in.SpeedFtS * meanChord / viscosity
	effectiveMach := in.SpeedFtS * math.Cos(radians(midChordSweep)) / atm.SoundSpeedMS

	cf := flatPlateCf(re, effectiveMach)

	formFactor := (1 + 0.6/in.XMaxThickness*in.RelativeThickness + 100*math.Pow(in.RelativeThickness, 4)) *
		(1.34 * math.Pow(in.SpeedFtS, 0.18) * math.Pow(math.Cos(radians(maxThicknessSweep)), 0.28))

	var wettedArea float64
	if in.RelativeThickness <= 0.05 {
		wettedArea = 2.003 * in.WingAreaFt2
	} else {
		wettedArea = in.WingAreaFt2 * (1.977 + 0.52*in.RelativeThickness)
	}

	cd0 := cf * formFactor * in.InterferenceFactor * wettedArea / in.WingAreaFt2

	dynamicPressure := 0.5 * density * in.SpeedFtS * in.SpeedFtS * in.WingAreaFt2
	cl := in.CruiseWeightLbf / dynamicPressure
	cdTotal := cd0 + (1/(math.Pi*in.AspectRatio*oswaldWing(in.AspectRatio)))*cl*cl

	return WingResult{
		TotalDragLbf:    cdTotal * dynamicPressure,
		ZeroLiftDragLbf: cd0 * dynamicPressure,
		Notes:           "Wing profile plus induced drag in cruise.",
	}, nil
}

type LiftSlopeInput struct {
	SpeedFtS            float64 `json:"speed_ft_s"`
	AltitudeFt          float64 `json:"altitude_ft"`
	WingAreaFt2         float64 `json:"wing_area_ft2"`
	AspectRatio         float64 `json:"aspect_ratio"`
	TaperRatio          float64 `json:"taper_ratio"`
	LeadingEdgeSweepDeg float64 `json:"leading_edge_sweep_deg"`
	ProfileSlope        float64 `json:"profile_slope_per_deg"`
}

type LiftSlopeResult struct {
	LiftSlope float64 `json:"lift_slope_per_deg"`
	Notes     string  `json:"notes"`
}

// LiftSlope corrects a 2-D profile lift-curve slope to a finite swept wing
// with Anderson's compressible lifting-line relation.
func LiftSlope(in LiftSlopeInput) (LiftSlopeResult, error) {
	if in.SpeedFtS <= 0 || in.WingAreaFt2 <= 0 || in.AspectRatio <= 0 ||
		in.TaperRatio <= 0 || in.ProfileSlope <= 0 {
		return LiftSlopeResult{}, fmt.Errorf("invalid input")
	}

	atm := atmosphere.Evaluate(in.AltitudeFt * ftToM)

	span := math.Sqrt(in.WingAreaFt2 * in.AspectRatio)
	rootChord := 2 * span / (in.AspectRatio * (1 + in.TaperRatio))

	mach := in.SpeedFtS / atm.SoundSpeedMS
	sweepLE := radians(in.LeadingEdgeSweepDeg)
	midChordSweep := math.Atan(math.Tan(sweepLE) - 0.5*(2*rootChord/span)*(1-in.TaperRatio))

	slopeEq := in.ProfileSlope * 180 / math.Pi * math.Cos(radians(midChordSweep))
	slope3D := slopeEq / (math.Sqrt(1-math.Pow(mach*math.Cos(radians(midChordSweep)), 2)+
		math.Pow(slopeEq/(math.Pi*in.AspectRatio), 2)) + slopeEq/(math.Pi*in.AspectRatio))

	return LiftSlopeResult{
		LiftSlope: slope3D * math.Pi / 180,
		Notes:     "3-D lift-curve slope for a swept tapered wing.",
	}, nil
}

// Flat-plate skin friction, laminar below the transition Reynolds number,
// turbulent with compressibility correction above it.
func flatPlateCf(re, mach float64) float64 {
	if re <= 5e5 {
		return 1.328 / math.Sqrt(re)
	}
	return 0.455 / (math.Pow(math.Log10(re), 2.58) * math.Pow(1+0.144*mach*mach, 0.65))
}

// Wing-only Oswald factor; the source correlation treats it as constant.
func oswaldWing(aspectRatio float64) float64 {
	return 0.95
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Composite Simpson quadrature with n even panels.
func integrate(f func(float64) float64, a, b float64, n int) float64 {
	if n%2 != 0 {
		n++
	}
	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 0 {
			sum += 2 * f(x)
		} else {
			sum += 4 * f(x)
		}
	}
	return sum * h / 3
}
