package sizing

import (
	"errors"
	"fmt"
	"math"
	"strings"

	atmosphere "github.com/KhiZeus/PlaneProject/internal/calc/atmosphere"
	solve "github.com/KhiZeus/PlaneProject/internal/calc/solve"
)

// Mission unit conventions (Corke, Design of Aircraft): altitude in ft, range
// in nautical miles, loiter in minutes, TSFC in lb/lb/hr, weights in lbf.
const (
	ftPerNauticalMile = 6080.0
	secondsPerHour    = 3600.0
	minutesFactor     = 60.0
	ftToM             = 0.3048

	// Weight retained through takeoff and landing. The landing fraction is
	// tabulated alongside the takeoff one but the closure equation does not
	// consume it; a landing leg would multiply it into the mission product.
	fTakeoff = 0.975
	fLanding = 0.975

	tolerance = 1e-6
)

var (
	ErrUnknownCategory = errors.New("unknown aircraft category")
	ErrDidNotConverge  = errors.New("sizing iteration did not converge")
)

// Input is one mission specification for a single-point takeoff-weight solve.
type Input struct {
	Category    string  `json:"category"`
	CruiseMach  float64 `json:"cruise_mach"`
	CruiseAltFt float64 `json:"cruise_altitude_ft"`
	AspectRatio float64 `json:"aspect_ratio"`
	TSFC        float64 `json:"tsfc"`
	LoiterMin   float64 `json:"loiter_min"`
	FuelReserve float64 `json:"fuel_reserve"`
	FuelTrapped float64 `json:"fuel_trapped"`
	PayloadLbf  float64 `json:"payload_lbf"`
	RangeNM     float64 `json:"range_nm"`
}

type Result struct {
	TakeoffLbf        float64 `json:"takeoff_lbf"`
	EmptyLbf          float64 `json:"empty_lbf"`
	FuelLbf           float64 `json:"fuel_lbf"`
	PayloadLbf        float64 `json:"payload_lbf"`
	StructureFraction float64 `json:"structure_fraction"`
	Feasible          bool    `json:"feasible"`
	Notes             string  `json:"notes"`
}

// Per-category regression pair of the empty-weight fraction power law
// sf = a * Wto^c.
type regression struct {
	a, c float64
}

var structureTable = map[string]regression{
	"glider":                             {0.86, -0.05},
	"powered-glider":                     {0.91, -0.05},
	"individually-constructed":           {1.19, -0.09},
	"individually-constructed-composite": {1.15, -0.09},
	"general-aviation-single-engine":     {2.36, -0.18},
	"general-aviation-twin-engine":       {1.51, -0.10},
	"agricultural":                       {0.74, -0.03},
	"twin-turboprop":                     {0.96, -0.05},
	"seaplane":                           {1.09, -0.05},
	"training-jet":                       {1.59, -0.10},
	"combat-jet":                         {2.34, -0.13},
	"transport-jet":                      {1.02, -0.06},
	"bomber":                             {0.93, -0.07},
}

// StructureFraction evaluates the empirical empty-weight fraction for the
// category at the given takeoff weight. The category set is closed; an
// unknown tag is a hard error, never a default. Takeoff weight must be
// strictly positive (negative exponent).
func StructureFraction(category string, takeoffLbf float64) (float64, error) {
	reg, ok := structureTable[strings.ToLower(category)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return reg.a * math.Pow(takeoffLbf, reg.c), nil
}

// finesseMax estimates the maximum lift-to-drag ratio. The subsonic and
// supersonic branches meet discontinuously at Mach 1; the breakpoint is part
// of the correlation and is kept as published.
func finesseMax(mach, aspectRatio float64) float64 {
	if mach < 1 {
		return aspectRatio + 10
	}
	return 11 * math.Pow(mach, -0.5)
}

// climbFraction is the weight retained through the climb to cruise altitude.
func climbFraction(mach float64) float64 {
	if mach < 1 {
		return 1 - 0.04*mach
	}
	return 0.96 - 0.03*(mach-1)
}

// cruiseFraction is the Breguet weight ratio for the cruise leg. The cruise
// true airspeed always comes from the atmosphere at the cruise altitude.
func cruiseFraction(mach, altitudeFt, aspectRatio, rangeNM, tsfc float64) float64 {
	ld := 0.866 * finesseMax(mach, aspectRatio)
	vc := mach * atmosphere.Evaluate(altitudeFt*ftToM).SoundSpeedMS
	return math.Exp(-rangeNM * tsfc * ftPerNauticalMile / (vc * ld * secondsPerHour))
}

// loiterFraction is the endurance weight ratio for the loiter leg.
func loiterFraction(mach, aspectRatio, loiterMin, tsfc float64) float64 {
	return math.Exp(-loiterMin * tsfc / (finesseMax(mach, aspectRatio) * minutesFactor))
}

// Calculate reconciles the takeoff weight against the payload, the empty-
// weight regression and the mission weight fractions, then splits the
// converged weight into empty and fuel shares. A converged solve with
// negative fuel is returned with Feasible=false rather than failing: the
// iteration found the numeric root, the mission is just not flyable.
func Calculate(in Input) (Result, error) {
	if in.CruiseMach <= 0 || in.AspectRatio <= 0 || in.TSFC <= 0 ||
		in.PayloadLbf < 0 || in.RangeNM < 0 || in.LoiterMin < 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	reg, ok := structureTable[strings.ToLower(in.Category)]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownCategory, in.Category)
	}

	// The bracketed mission term does not depend on the takeoff weight, so
	// it is evaluated once outside the iteration.
	fclimb := climbFraction(in.CruiseMach)
	fcruise := cruiseFraction(in.CruiseMach, in.CruiseAltFt, in.AspectRatio, in.RangeNM, in.TSFC)
	floiter := loiterFraction(in.CruiseMach, in.AspectRatio, in.LoiterMin, in.TSFC)
	mission := (1 - fTakeoff*fclimb) * (1 + fcruise*floiter)

	residual := func(wto float64) float64 {
		return 1 - (in.PayloadLbf/wto + reg.a*math.Pow(wto, reg.c) + mission)
	}

	wto, err := solve.Root(residual, in.PayloadLbf, tolerance, 0)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrDidNotConverge, err)
	}
	if wto <= 0 || math.IsNaN(wto) {
		return Result{}, ErrDidNotConverge
	}

	sf := reg.a * math.Pow(wto, reg.c)
	empty := sf * wto
	fuel := wto - empty - in.PayloadLbf

	out := Result{
		TakeoffLbf:        wto,
		EmptyLbf:          empty,
		FuelLbf:           fuel,
		PayloadLbf:        in.PayloadLbf,
		StructureFraction: sf,
		Feasible:          fuel >= 0,
		Notes:             "Corke weight-fraction sizing, single design point.",
	}
	if !out.Feasible {
		out.Notes = "Converged with negative fuel weight: mission infeasible for this category."
	}
	return out, nil
}
