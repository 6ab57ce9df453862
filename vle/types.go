package vle

import (
	"errors"

	"github.com/lvchem/distill/numeric"
)

// Sentinel errors returned by the equilibrium model.
var (
	// ErrNoComponents indicates an attempt to build a model without any
	// components.
	ErrNoComponents = errors.New("vle: component list is empty")

	// ErrDimensionMismatch indicates a composition vector whose length does
	// not match the model's component count.
	ErrDimensionMismatch = errors.New("vle: composition length does not match component count")

	// ErrBadPressure indicates a non-positive pressure.
	ErrBadPressure = errors.New("vle: pressure must be positive")
)

// Options configures a bubble- or dew-temperature solve.
//
// TGuess is the initial temperature (K); 0 selects the default guess, the
// mole-fraction-weighted mean of the component boiling points.
// MaxIter caps the secant iteration (default 100) and Tol is the secant
// convergence tolerance (default 1e-6).
type Options struct {
	TGuess  float64
	MaxIter int
	Tol     float64
}

// DefaultOptions returns the solver defaults: automatic initial guess,
// MaxIter = 100, Tol = 1e-6.
func DefaultOptions() Options {
	n := numeric.DefaultOptions()

	return Options{
		TGuess:  0,
		MaxIter: n.MaxIter,
		Tol:     n.Tol,
	}
}

// solverOptions lowers Options into the shared scalar-solver options.
func (o Options) solverOptions() numeric.Options {
	out := numeric.DefaultOptions()
	if o.MaxIter > 0 {
		out.MaxIter = o.MaxIter
	}
	if o.Tol > 0 {
		out.Tol = o.Tol
	}

	return out
}

// Flash is the outcome of a bubble- or dew-temperature solve.
//
// When Converged is false the solve fell back to the initial guess and Comp
// echoes the input composition — a degraded but total result, by contract
// never an error.
type Flash struct {
	// T is the equilibrium temperature (K), or the initial guess on
	// non-convergence.
	T float64

	// Comp is the conjugate phase composition: vapor y for a bubble solve,
	// liquid x for a dew solve. Normalized to sum 1.
	Comp []float64

	// Converged reports whether the root search actually converged.
	Converged bool
}
