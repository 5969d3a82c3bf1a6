package wingload

import (
	"math"
	"testing"
)

func TestLandingWingLoading(t *testing.T) {
	res, err := Calculate(Input{
		Constraint:      ConstraintLanding,
		AltitudeFt:      0,
		LiftCoefficient: 2.0,
		DistanceFt:      5000,
	})
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	// Sea level: sigma = 1, lift pressure = (5000-400)/118.
	want := (5000.0 - 400.0) / 118.0 * 2.0
	if math.Abs(res.WingLoading-want) > 1e-9 {
		t.Errorf("wing loading = %v, want %v", res.WingLoading, want)
	}
}

func TestLandingAltitudeReducesLoading(t *testing.T) {
	seaLevel, err := Calculate(Input{
		Constraint: ConstraintLanding, AltitudeFt: 0, LiftCoefficient: 2.0, DistanceFt: 5000,
	})
	if err != nil {
		t.Fatal(err)
	}
	highField, err := Calculate(Input{
		Constraint: ConstraintLanding, AltitudeFt: 8000, LiftCoefficient: 2.0, DistanceFt: 5000,
	})
	if err != nil {
		t.Fatal(err)
	}
	if highField.WingLoading >= seaLevel.WingLoading {
		t.Errorf("thinner air should lower the allowed loading: %v >= %v",
			highField.WingLoading, seaLevel.WingLoading)
	}
}

func TestTakeoffWingLoading(t *testing.T) {
	in := Input{
		Constraint:        ConstraintTakeoff,
		AltitudeFt:        0,
		LiftCoefficient:   1.8,
		ThrustWeightRatio: 0.3,
		DistanceFt:        6000,
	}
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if res.WingLoading <= 0 {
		t.Fatalf("wing loading = %v, want > 0", res.WingLoading)
	}
	// The recovered takeoff pressure must satisfy the field-length equation.
	sigma := sigmaAt(in.AltitudeFt)
	pressure := res.WingLoading / (in.LiftCoefficient * in.ThrustWeightRatio * sigma)
	dist := 20.9*pressure + 87*math.Sqrt(pressure*in.ThrustWeightRatio)
	if math.Abs(dist-in.DistanceFt) > 0.1 {
		t.Errorf("takeoff pressure does not satisfy the correlation: got %v ft, want %v", dist, in.DistanceFt)
	}
}

func TestCruiseJetVsProp(t *testing.T) {
	base := Input{
		Constraint:              ConstraintCruise,
		AltitudeFt:              35000,
		ZeroLiftDragCoefficient: 0.02,
		AspectRatio:             8,
		SpeedFtS:                780,
	}

	jet := base
	jet.EngineType = "jet"
	jetRes, err := Calculate(jet)
	if err != nil {
		t.Fatal(err)
	}

	prop := base
	prop.EngineType = "prop"
	propRes, err := Calculate(prop)
	if err != nil {
		t.Fatal(err)
	}

	// Max L/D loading exceeds max L^0.5/D loading by sqrt(3).
	ratio := propRes.WingLoading / jetRes.WingLoading
	if math.Abs(ratio-math.Sqrt(3)) > 1e-9 {
		t.Errorf("prop/jet loading ratio = %v, want sqrt(3)", ratio)
	}
}

func TestCruiseInvalidEngineType(t *testing.T) {
	_, err := Calculate(Input{
		Constraint:              ConstraintCruise,
		ZeroLiftDragCoefficient: 0.02,
		AspectRatio:             8,
		SpeedFtS:                780,
		EngineType:              "rocket",
	})
	if err == nil {
		t.Error("expected an error for an invalid engine type")
	}
}

func TestClimbInsufficientThrust(t *testing.T) {
	res, err := Calculate(Input{
		Constraint:              ConstraintClimb,
		AltitudeFt:              0,
		ZeroLiftDragCoefficient: 0.025,
		AspectRatio:             8,
		SpeedFtS:                250,
		RateOfClimbFtMin:        5000,
		ThrustWeightRatio:       0.05,
	})
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if res.SufficientThrust {
		t.Error("thrust-to-weight of 0.05 should not sustain this climb")
	}
	if res.WingLoading != 0 {
		t.Errorf("wing loading = %v, want 0 for insufficient thrust", res.WingLoading)
	}
	if res.MinThrustWeight <= 0.05 {
		t.Errorf("minimum thrust-to-weight = %v, should exceed the requested 0.05", res.MinThrustWeight)
	}
}

func TestClimbSufficientThrust(t *testing.T) {
	res, err := Calculate(Input{
		Constraint:              ConstraintClimb,
		AltitudeFt:              0,
		ZeroLiftDragCoefficient: 0.025,
		AspectRatio:             8,
		SpeedFtS:                250,
		RateOfClimbFtMin:        2000,
		ThrustWeightRatio:       0.4,
	})
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if !res.SufficientThrust {
		t.Fatal("expected sufficient thrust")
	}
	if res.WingLoading <= 0 {
		t.Errorf("wing loading = %v, want > 0", res.WingLoading)
	}
}

func TestUnknownConstraint(t *testing.T) {
	if _, err := Calculate(Input{Constraint: "hover"}); err == nil {
		t.Error("expected an error for an unknown constraint")
	}
}
