package numeric

import "errors"

// Sentinel errors returned by the scalar solvers.
var (
	// ErrMaxIterations indicates the iteration cap was reached before the
	// residual or the step size dropped below Options.Tol.
	ErrMaxIterations = errors.New("numeric: root search exceeded iteration cap")

	// ErrBadBracket indicates f(lo) and f(hi) do not have opposite signs,
	// so a bisection search cannot start.
	ErrBadBracket = errors.New("numeric: root is not bracketed by [lo, hi]")

	// ErrBadInterval indicates lo >= hi or a non-finite interval endpoint.
	ErrBadInterval = errors.New("numeric: invalid search interval")

	// ErrNoProgress indicates a degenerate secant step (flat function:
	// successive residuals are identical, so the update is undefined).
	ErrNoProgress = errors.New("numeric: secant step is degenerate")

	// ErrBadOptions indicates MaxIter < 1 or Tol <= 0.
	ErrBadOptions = errors.New("numeric: MaxIter must be >= 1 and Tol > 0")
)

// Options configures a scalar root search. MaxIter is a hard cap; the
// solver errors out when it is exhausted. Tol applies to both the residual
// |f(x)| and the step size |Δx|.
type Options struct {
	MaxIter int     // iteration cap (must be >= 1)
	Tol     float64 // convergence tolerance (must be > 0)
}

// DefaultOptions returns the solver defaults used across the engine:
// MaxIter = 100, Tol = 1e-6.
func DefaultOptions() Options {
	return Options{
		MaxIter: 100,
		Tol:     1e-6,
	}
}

// validate rejects non-positive iteration caps and tolerances.
func (o Options) validate() error {
	if o.MaxIter < 1 || o.Tol <= 0 {
		return ErrBadOptions
	}

	return nil
}
