package solve

import (
	"fmt"
	"math"
)

// Defaults matching the tolerance the sizing iteration was validated with.
const (
	DefaultTol     = 1e-6
	DefaultMaxIter = 100
)

var ErrNoConvergence = fmt.Errorf("root finding did not converge")

// Root finds a zero of f near x0 with the secant method. No derivative is
// required; f must be finite on the visited interval. The step is damped so
// the iterate stays strictly positive, since every equation solved here is
// defined on weights or pressures.
func Root(f func(float64) float64, x0, tol float64, maxIter int) (float64, error) {
	if tol <= 0 {
		tol = DefaultTol
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}
	if x0 <= 0 {
		x0 = 1
	}

	x1 := x0 * 1.1
	f0 := f(x0)
	f1 := f(x1)
	for i := 0; i < maxIter; i++ {
		if math.IsNaN(f0) || math.IsNaN(f1) {
			return 0, ErrNoConvergence
		}
		if f1 == f0 {
			// Flat secant, cannot make progress.
			return 0, ErrNoConvergence
		}
		x2 := x1 - f1*(x1-x0)/(f1-f0)
		for x2 <= 0 {
			x2 = (x1 + x2) / 2
			if math.Abs(x2-x1) < tol {
				return 0, ErrNoConvergence
			}
		}
		if math.Abs(x2-x1) <= tol*math.Max(1, math.Abs(x2)) {
			return x2, nil
		}
		x0, f0 = x1, f1
		x1 = x2
		f1 = f(x1)
	}
	return 0, ErrNoConvergence
}
