package sizing

import (
	"errors"
	"math"
	"testing"
)

// Corke's transport-jet worked example.
func referenceMission() Input {
	return Input{
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

func TestStructureFractionDecreasesWithWeight(t *testing.T) {
	for category := range structureTable {
		low, err := StructureFraction(category, 1e4)
		if err != nil {
			t.Fatalf("StructureFraction(%q) error: %v", category, err)
		}
		high, err := StructureFraction(category, 1e5)
		if err != nil {
			t.Fatalf("StructureFraction(%q) error: %v", category, err)
		}
		if high >= low {
			t.Errorf("%s: fraction should decrease with weight, got %v -> %v", category, low, high)
		}
		if low <= 0 || high <= 0 {
			t.Errorf("%s: fraction must be positive", category)
		}
	}
}

func TestStructureFractionKnownValues(t *testing.T) {
	tests := []struct {
		category string
		wto      float64
		want     float64
	}{
		{"transport-jet", 1e5, 1.02 * math.Pow(1e5, -0.06)},
		{"combat-jet", 5e4, 2.34 * math.Pow(5e4, -0.13)},
		{"glider", 1500, 0.86 * math.Pow(1500, -0.05)},
	}
	for _, tt := range tests {
		got, err := StructureFraction(tt.category, tt.wto)
		if err != nil {
			t.Fatalf("StructureFraction(%q) error: %v", tt.category, err)
		}
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("StructureFraction(%q, %v) = %v, want %v", tt.category, tt.wto, got, tt.want)
		}
	}
}

func TestStructureFractionCaseInsensitive(t *testing.T) {
	a, err := StructureFraction("Transport-Jet", 1e5)
	if err != nil {
		t.Fatalf("mixed case lookup failed: %v", err)
	}
	b, _ := StructureFraction("transport-jet", 1e5)
	if a != b {
		t.Errorf("case-insensitive lookup mismatch: %v vs %v", a, b)
	}
}

func TestStructureFractionUnknownCategory(t *testing.T) {
	_, err := StructureFraction("biplane-unknown", 1e5)
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestClimbFraction(t *testing.T) {
	tests := []struct {
		mach, want float64
	}{
		{0.5, 0.98},
		{0.82, 0.9672},
		{1.0, 0.96},
		{1.5, 0.945},
		{2.0, 0.93},
	}
	for _, tt := range tests {
		if got := climbFraction(tt.mach); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("climbFraction(%v) = %v, want %v", tt.mach, got, tt.want)
		}
	}
}

func TestFinesseBranches(t *testing.T) {
	if got := finesseMax(0.8, 10); got != 20 {
		t.Errorf("subsonic finesse = %v, want 20", got)
	}
	if got := finesseMax(1.0, 10); math.Abs(got-11) > 1e-12 {
		t.Errorf("finesse at Mach 1 = %v, want 11", got)
	}
	if got := finesseMax(4, 10); math.Abs(got-5.5) > 1e-12 {
		t.Errorf("finesse at Mach 4 = %v, want 5.5", got)
	}
}

func TestPhaseFractionsInUnitRange(t *testing.T) {
	fc := cruiseFraction(0.82, 40000, 10, 3500, 0.45)
	if fc <= 0 || fc >= 1 {
		t.Errorf("cruise fraction = %v, want in (0,1)", fc)
	}
	fl := loiterFraction(0.82, 10, 45, 0.45)
	if fl <= 0 || fl >= 1 {
		t.Errorf("loiter fraction = %v, want in (0,1)", fl)
	}
	if fl <= fc {
		t.Errorf("a 45 min loiter should burn less than a 3500 nmi cruise: %v <= %v", fl, fc)
	}
}

func TestCalculateReferenceMission(t *testing.T) {
	res, err := Calculate(referenceMission())
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if res.TakeoffLbf <= res.PayloadLbf {
		t.Errorf("takeoff weight %v should exceed payload %v", res.TakeoffLbf, res.PayloadLbf)
	}
	if res.EmptyLbf <= 0 || res.FuelLbf <= 0 {
		t.Errorf("empty %v and fuel %v weights must be positive", res.EmptyLbf, res.FuelLbf)
	}
	if !res.Feasible {
		t.Error("reference mission should be feasible")
	}
	if res.StructureFraction <= 0 || res.StructureFraction >= 1 {
		t.Errorf("structure fraction = %v, want in (0,1)", res.StructureFraction)
	}
}

func TestCalculateClosureInvariant(t *testing.T) {
	in := referenceMission()
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	sum := res.EmptyLbf + res.FuelLbf + res.PayloadLbf
	if math.Abs(res.TakeoffLbf-sum) > 1e-6*res.TakeoffLbf {
		t.Errorf("closure violated: Wto=%v, sum=%v", res.TakeoffLbf, sum)
	}
	if math.Abs(res.EmptyLbf-res.StructureFraction*res.TakeoffLbf) > 1e-9*res.TakeoffLbf {
		t.Errorf("empty weight %v != structure fraction * Wto", res.EmptyLbf)
	}

	// The converged weight must actually satisfy the closure equation.
	sf, _ := StructureFraction(in.Category, res.TakeoffLbf)
	mission := (1 - fTakeoff*climbFraction(in.CruiseMach)) *
		(1 + cruiseFraction(in.CruiseMach, in.CruiseAltFt, in.AspectRatio, in.RangeNM, in.TSFC)*
			loiterFraction(in.CruiseMach, in.AspectRatio, in.LoiterMin, in.TSFC))
	residual := 1 - (in.PayloadLbf/res.TakeoffLbf + sf + mission)
	if math.Abs(residual) > 1e-6 {
		t.Errorf("residual at converged weight = %v", residual)
	}
}

func TestCalculateIdempotent(t *testing.T) {
	a, err := Calculate(referenceMission())
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	b, err := Calculate(referenceMission())
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if a != b {
		t.Errorf("identical missions produced different results: %+v vs %+v", a, b)
	}
}

func TestCalculateZeroPayload(t *testing.T) {
	in := referenceMission()
	in.PayloadLbf = 0
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("zero payload mission should converge: %v", err)
	}
	if res.TakeoffLbf <= 0 {
		t.Errorf("takeoff weight = %v, want > 0", res.TakeoffLbf)
	}
}

func TestCalculatePayloadMonotonic(t *testing.T) {
	light := referenceMission()
	heavy := referenceMission()
	heavy.PayloadLbf = 2 * light.PayloadLbf

	a, err := Calculate(light)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Calculate(heavy)
	if err != nil {
		t.Fatal(err)
	}
	if b.TakeoffLbf <= a.TakeoffLbf {
		t.Errorf("doubling payload should raise takeoff weight: %v -> %v", a.TakeoffLbf, b.TakeoffLbf)
	}
}

func TestCalculateUnknownCategory(t *testing.T) {
	in := referenceMission()
	in.Category = "biplane-unknown"
	_, err := Calculate(in)
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestCalculateInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{"zero mach", func(in *Input) { in.CruiseMach = 0 }},
		{"negative aspect ratio", func(in *Input) { in.AspectRatio = -1 }},
		{"zero tsfc", func(in *Input) { in.TSFC = 0 }},
		{"negative payload", func(in *Input) { in.PayloadLbf = -10 }},
		{"negative range", func(in *Input) { in.RangeNM = -100 }},
	}
	for _, tt := range tests {
		in := referenceMission()
		tt.mutate(&in)
		if _, err := Calculate(in); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}

func TestCalculateAllCategoriesConverge(t *testing.T) {
	for category := range structureTable {
		in := referenceMission()
		in.Category = category
		res, err := Calculate(in)
		if err != nil {
			t.Errorf("%s: %v", category, err)
			continue
		}
		if res.TakeoffLbf <= 0 {
			t.Errorf("%s: takeoff weight = %v", category, res.TakeoffLbf)
		}
	}
}
