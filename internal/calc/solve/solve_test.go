package solve

import (
	"math"
	"testing"
)

func TestRootQuadratic(t *testing.T) {
	f := func(x float64) float64 { return x*x - 4 }
	root, err := Root(f, 1, 0, 0)
	if err != nil {
		t.Fatalf("Root returned error: %v", err)
	}
	if math.Abs(root-2) > 1e-6 {
		t.Errorf("root = %v, want 2", root)
	}
}

func TestRootLinear(t *testing.T) {
	f := func(x float64) float64 { return 118*x + 400 - 5000 }
	root, err := Root(f, 1, 0, 0)
	if err != nil {
		t.Fatalf("Root returned error: %v", err)
	}
	want := (5000.0 - 400.0) / 118.0
	if math.Abs(root-want) > 1e-6 {
		t.Errorf("root = %v, want %v", root, want)
	}
}

func TestRootNonPositiveGuess(t *testing.T) {
	// A zero guess must not break the iteration; the solver restarts at 1.
	f := func(x float64) float64 { return x - 3 }
	root, err := Root(f, 0, 0, 0)
	if err != nil {
		t.Fatalf("Root returned error: %v", err)
	}
	if math.Abs(root-3) > 1e-6 {
		t.Errorf("root = %v, want 3", root)
	}
}

func TestRootFlatFunction(t *testing.T) {
	f := func(x float64) float64 { return 1 }
	if _, err := Root(f, 1, 0, 0); err == nil {
		t.Error("expected an error for a function with no root")
	}
}

func TestRootNaN(t *testing.T) {
	f := func(x float64) float64 { return math.NaN() }
	if _, err := Root(f, 1, 0, 0); err == nil {
		t.Error("expected an error when the residual is NaN")
	}
}

func TestRootIterationBudget(t *testing.T) {
	// Root far from the guess with a budget of one step.
	f := func(x float64) float64 { return x - 1e9 }
	if _, err := Root(f, 1, 1e-12, 1); err == nil {
		t.Error("expected an error when the iteration budget is exhausted")
	}
}
