package main

import (
	"fmt"
	"log"

	sizing "github.com/KhiZeus/PlaneProject/internal/calc/sizing"
)

// Reference transport-jet mission (Corke's worked example). Kept as an
// explicit entry point so importing the sizing package never runs it.
func main() {
	mission := sizing.Input{
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

	res, err := sizing.Calculate(mission)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Wto= %.2f\n", res.TakeoffLbf)
	fmt.Printf("Wempty= %.2f\n", res.EmptyLbf)
	fmt.Printf("Wfuel= %.2f\n", res.FuelLbf)
	fmt.Printf("Structure factor %.4f\n", res.StructureFraction)
	if !res.Feasible {
		fmt.Println("Mission infeasible: negative fuel weight")
	}
}
