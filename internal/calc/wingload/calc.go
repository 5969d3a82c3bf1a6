package wingload

import (
	"fmt"
	"math"

	atmosphere "github.com/KhiZeus/PlaneProject/internal/calc/atmosphere"
	solve "github.com/KhiZeus/PlaneProject/internal/calc/solve"
)

type Constraint string

const (
	ConstraintLanding Constraint = "landing"
	ConstraintTakeoff Constraint = "takeoff"
	ConstraintCruise  Constraint = "cruise"
	ConstraintClimb   Constraint = "climb"
)

const ftToM = 0.3048

type Input struct {
	Constraint Constraint `json:"constraint"`

	AltitudeFt      float64 `json:"altitude_ft"`
	LiftCoefficient float64 `json:"lift_coefficient"`
	DistanceFt      float64 `json:"distance_ft"`

	ZeroLiftDragCoefficient float64 `json:"cd0"`
	AspectRatio             float64 `json:"aspect_ratio"`
	SpeedFtS                float64 `json:"speed_ft_s"`
	EngineType              string  `json:"engine_type"`

	ThrustWeightRatio float64 `json:"thrust_weight_ratio"`
	RateOfClimbFtMin  float64 `json:"rate_of_climb_ft_min"`
}

type Result struct {
	WingLoading      float64 `json:"wing_loading_lbf_ft2"`
	SufficientThrust bool    `json:"sufficient_thrust"`
	MinThrustWeight  float64 `json:"min_thrust_weight"`
	Notes            string  `json:"notes"`
}

// Calculate evaluates one wing-loading constraint. Landing and takeoff follow
// the field-length correlations, cruise picks the loading that maximizes
// range for the engine type, climb checks the thrust budget first.
func Calculate(in Input) (Result, error) {
	switch in.Constraint {
	case ConstraintLanding:
		return landing(in)
	case ConstraintTakeoff:
		return takeoff(in)
	case ConstraintCruise:
		return cruise(in)
	case ConstraintClimb:
		return climb(in)
	default:
		return Result{}, fmt.Errorf("unknown constraint %q", in.Constraint)
	}
}

// Density ratio relative to sea level at the given field altitude.
func sigmaAt(altitudeFt float64) float64 {
	return atmosphere.Evaluate(altitudeFt*ftToM).DensityKgM3 / atmosphere.Evaluate(0).DensityKgM3
}

func landing(in Input) (Result, error) {
	if in.LiftCoefficient <= 0 || in.DistanceFt <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	sigma := sigmaAt(in.AltitudeFt)

	// Field length correlation: distance = 118*q + 400.
	liftPressure := (in.DistanceFt - 400) / 118
	wl := liftPressure * in.LiftCoefficient * sigma

	return Result{
		WingLoading: wl,
		Notes:       "Wing loading bounded by the landing field length.",
	}, nil
}

func takeoff(in Input) (Result, error) {
	if in.LiftCoefficient <= 0 || in.DistanceFt <= 0 || in.ThrustWeightRatio <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	sigma := sigmaAt(in.AltitudeFt)

	// Ground-run correlation: distance = 20.9*q + 87*sqrt(q*T/W),
	// nonlinear in the takeoff pressure q.
	tw := in.ThrustWeightRatio
	pressure, err := solve.Root(func(q float64) float64 {
		return in.DistanceFt - 20.9*q - 87*math.Sqrt(q*tw)
	}, in.DistanceFt/20.9, 0, 0)
	if err != nil {
		return Result{}, fmt.Errorf("takeoff pressure: %w", err)
	}
	wl := pressure * in.LiftCoefficient * tw * sigma

	return Result{
		WingLoading: wl,
		Notes:       "Wing loading bounded by the takeoff field length.",
	}, nil
}

func cruise(in Input) (Result, error) {
	if in.ZeroLiftDragCoefficient <= 0 || in.AspectRatio <= 0 || in.SpeedFtS <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	density := atmosphere.Evaluate(in.AltitudeFt * ftToM).DensityKgM3
	k := 1 / (math.Pi * in.AspectRatio * oswaldEfficiency(in.AspectRatio))

	// Propeller aircraft cruise at max L/D, jets at max L^0.5/D.
	var wl float64
	switch in.EngineType {
	case "prop":
		wl = density * in.SpeedFtS * in.SpeedFtS * 0.5 * math.Sqrt(in.ZeroLiftDragCoefficient/k)
	case "jet":
		wl = density * in.SpeedFtS * in.SpeedFtS * 0.5 * math.Sqrt(in.ZeroLiftDragCoefficient/(3*k))
	default:
		return Result{}, fmt.Errorf("invalid engine type %q, must be \"prop\" or \"jet\"", in.EngineType)
	}

	return Result{
		WingLoading: wl,
		Notes:       "Optimal cruise wing loading for maximum range.",
	}, nil
}

func climb(in Input) (Result, error) {
	if in.ZeroLiftDragCoefficient <= 0 || in.AspectRatio <= 0 || in.SpeedFtS <= 0 ||
		in.RateOfClimbFtMin <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	alpha := math.Asin(in.RateOfClimbFtMin / (60 * in.SpeedFtS))
	density := atmosphere.Evaluate(in.AltitudeFt * ftToM).DensityKgM3
	k := 1 / (math.Pi * in.AspectRatio * oswaldEfficiency(in.AspectRatio))

	twMin := math.Sin(alpha) + 2*math.Cos(alpha)*math.Sqrt(in.ZeroLiftDragCoefficient*k)
	if in.ThrustWeightRatio < twMin {
		return Result{
			WingLoading:      0,
			SufficientThrust: false,
			MinThrustWeight:  twMin,
			Notes:            "Insufficient thrust for the requested climb.",
		}, nil
	}

	a := in.ThrustWeightRatio - math.Sin(alpha)
	denom := 2 * math.Cos(alpha) * math.Cos(alpha) * k / (0.5 * density * in.SpeedFtS * in.SpeedFtS)
	// Largest positive root, the less restrictive loading.
	wl := (a + math.Sqrt(a*a-4*in.ZeroLiftDragCoefficient*math.Cos(alpha)*math.Cos(alpha)*k)) / denom

	return Result{
		WingLoading:      wl,
		SufficientThrust: true,
		MinThrustWeight:  twMin,
		Notes:            "Wing loading for the requested climb gradient.",
	}, nil
}

// The data behind the correlation supports nothing finer than a constant.
func oswaldEfficiency(aspectRatio float64) float64 {
	return 0.8
}
