package numeric

import "math"

// Secant finds a root of f near x0 using the derivative-free secant
// iteration, clamping every iterate into the window [lo, hi].
//
// Algorithm Outline:
//  1. Seed a second point x1 by a small relative perturbation of x0.
//  2. Iterate x2 = x1 - f(x1)·(x1-x0)/(f(x1)-f(x0)), clamped to [lo, hi].
//  3. Stop when |f(x2)| <= Tol or |x2-x1| <= Tol.
//
// The window keeps a wild secant step from leaving the physically plausible
// domain (e.g. a temperature excursion far outside the boiling range, where
// property correlations are meaningless).
//
// Errors:
//   - ErrBadInterval   — lo >= hi or non-finite endpoints.
//   - ErrNoProgress    — degenerate step: f(x1) == f(x0).
//   - ErrMaxIterations — cap reached without convergence.
//
// Complexity: O(MaxIter) evaluations of f, O(1) memory.
func Secant(f func(float64) float64, x0, lo, hi float64, opts Options) (float64, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}
	if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsNaN(lo) || math.IsNaN(hi) {
		return 0, ErrBadInterval
	}

	x0 = clamp(x0, lo, hi)

	// Seed point: relative perturbation, falling back to an absolute step
	// when x0 == 0 would make the relative one degenerate.
	x1 := x0 * (1 + 1e-4)
	if x1 == x0 {
		x1 = x0 + 1e-4
	}
	x1 = clamp(x1, lo, hi)

	var (
		f0 = f(x0) // residual at the older point
		f1 = f(x1) // residual at the newer point
		x2 float64 // candidate iterate
	)
	if math.Abs(f0) <= opts.Tol {
		return x0, nil
	}

	for i := 0; i < opts.MaxIter; i++ {
		if math.Abs(f1) <= opts.Tol {
			return x1, nil
		}
		den := f1 - f0
		if den == 0 || math.IsNaN(den) {
			return 0, ErrNoProgress
		}

		x2 = clamp(x1-f1*(x1-x0)/den, lo, hi)
		if math.Abs(x2-x1) <= opts.Tol {
			return x2, nil
		}

		x0, f0 = x1, f1
		x1, f1 = x2, f(x2)
	}

	return 0, ErrMaxIterations
}

// Bisect finds a root of f inside [lo, hi] by plain interval bisection.
//
// Bisection trades speed for robustness: the Underwood auxiliary equation
// has a pole at every relative volatility, and a superlinear method started
// near a pole can shoot across it. A sign-change bracket cannot.
//
// Algorithm Outline:
//  1. Require sign(f(lo)) != sign(f(hi)), else ErrBadBracket.
//  2. Halve the interval, keeping the half with the sign change.
//  3. Stop when |f(mid)| <= Tol or the interval width <= Tol.
//
// Errors:
//   - ErrBadInterval   — lo >= hi or non-finite endpoints.
//   - ErrBadBracket    — no sign change across [lo, hi].
//   - ErrMaxIterations — cap reached without convergence.
//
// Complexity: O(MaxIter) evaluations of f, O(1) memory. Each iteration
// halves the interval, so MaxIter = 100 resolves any bracket to Tol.
func Bisect(f func(float64) float64, lo, hi float64, opts Options) (float64, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}
	if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsNaN(lo) || math.IsNaN(hi) {
		return 0, ErrBadInterval
	}

	var (
		flo = f(lo) // residual at the lower endpoint
		fhi = f(hi) // residual at the upper endpoint
	)
	if math.Abs(flo) <= opts.Tol {
		return lo, nil
	}
	if math.Abs(fhi) <= opts.Tol {
		return hi, nil
	}
	if math.IsNaN(flo) || math.IsNaN(fhi) || (flo < 0) == (fhi < 0) {
		return 0, ErrBadBracket
	}

	var (
		mid float64 // interval midpoint
		fm  float64 // residual at the midpoint
	)
	for i := 0; i < opts.MaxIter; i++ {
		mid = lo + (hi-lo)/2
		fm = f(mid)

		if math.Abs(fm) <= opts.Tol || hi-lo <= opts.Tol {
			return mid, nil
		}

		// Keep the half that still brackets the sign change.
		if (flo < 0) != (fm < 0) {
			hi, fhi = mid, fm
		} else {
			lo, flo = mid, fm
		}
	}

	return 0, ErrMaxIterations
}

// clamp confines x into [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
