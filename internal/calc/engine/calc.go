package engine

import "fmt"

type Input struct {
	CBHP                float64 `json:"cbhp"`
	SpeedFtS            float64 `json:"speed_ft_s"`
	PropellerEfficiency float64 `json:"propeller_efficiency"`
}

type Result struct {
	TSFC  float64 `json:"tsfc"`
	Notes string  `json:"notes"`
}

// Calculate converts a piston engine's brake-horsepower fuel consumption
// (lb/hr/bhp) into an equivalent thrust-specific fuel consumption (lb/hr/lb)
// at the given flight speed. The 550 is ft*lbf/s per horsepower.
func Calculate(in Input) (Result, error) {
	if in.CBHP <= 0 || in.SpeedFtS <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.PropellerEfficiency <= 0 || in.PropellerEfficiency > 1 {
		in.PropellerEfficiency = 0.75
	}
	tsfc := in.CBHP * in.SpeedFtS / (550 * in.PropellerEfficiency)
	return Result{
		TSFC:  tsfc,
		Notes: "Equivalent TSFC for a propeller-driven installation.",
	}, nil
}
