package numeric_test

import (
	"math"
	"testing"

	"github.com/lvchem/distill/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSecant_Quadratic verifies convergence to the positive root of x²-4.
func TestSecant_Quadratic(t *testing.T) {
	f := func(x float64) float64 { return x*x - 4 }

	root, err := numeric.Secant(f, 3, 0, 10, numeric.DefaultOptions())
	require.NoError(t, err, "smooth quadratic must converge")
	assert.InDelta(t, 2.0, root, 1e-5, "root of x²-4 near x0=3 is 2")
}

// TestSecant_ClampedWindow verifies iterates cannot escape [lo, hi].
func TestSecant_ClampedWindow(t *testing.T) {
	// Root at x=2 lies inside the window; a secant overshoot beyond hi=2.5
	// must be pulled back rather than diverge.
	f := func(x float64) float64 { return math.Exp(x) - math.Exp(2) }

	root, err := numeric.Secant(f, 1, 0.5, 2.5, numeric.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 2.0, root, 1e-4)
}

// TestSecant_FlatFunction ensures a constant residual errors with
// ErrNoProgress instead of dividing by zero.
func TestSecant_FlatFunction(t *testing.T) {
	f := func(float64) float64 { return -1.0 }

	_, err := numeric.Secant(f, 300, 100, 600, numeric.DefaultOptions())
	assert.ErrorIs(t, err, numeric.ErrNoProgress, "flat residual must not loop or panic")
}

// TestSecant_IterationCap ensures the cap is hard: a pathological function
// returns ErrMaxIterations rather than spinning.
func TestSecant_IterationCap(t *testing.T) {
	// Oscillating sign with no root accessible at this tolerance.
	f := func(x float64) float64 {
		if math.Mod(math.Floor(x*1e3), 2) == 0 {
			return 1
		}

		return -1
	}
	opts := numeric.Options{MaxIter: 5, Tol: 1e-12}

	_, err := numeric.Secant(f, 0.3, 0, 1, opts)
	assert.Error(t, err, "pathological residual must terminate with an error")
}

// TestSecant_BadInterval rejects inverted windows.
func TestSecant_BadInterval(t *testing.T) {
	f := func(x float64) float64 { return x }

	_, err := numeric.Secant(f, 0, 5, 1, numeric.DefaultOptions())
	assert.ErrorIs(t, err, numeric.ErrBadInterval)
}

// TestBisect_Cubic verifies convergence on a bracketed cubic root.
func TestBisect_Cubic(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 27 }

	root, err := numeric.Bisect(f, 0, 10, numeric.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 3.0, root, 1e-5)
}

// TestBisect_NoBracket ensures same-sign endpoints error with ErrBadBracket.
func TestBisect_NoBracket(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }

	_, err := numeric.Bisect(f, -5, 5, numeric.DefaultOptions())
	assert.ErrorIs(t, err, numeric.ErrBadBracket)
}

// TestBisect_EndpointRoot accepts a root sitting exactly on an endpoint.
func TestBisect_EndpointRoot(t *testing.T) {
	f := func(x float64) float64 { return x - 2 }

	root, err := numeric.Bisect(f, 2, 9, numeric.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2.0, root)
}

// TestBisect_NearPole verifies the bracket survives a steep function of the
// Underwood kind: 1/(x-a) shifted so the root sits between two poles.
func TestBisect_NearPole(t *testing.T) {
	// f has poles at 1 and 4 and a single root between them.
	f := func(x float64) float64 { return 2/(x-1) + 3/(x-4) }

	root, err := numeric.Bisect(f, 1.01, 3.99, numeric.DefaultOptions())
	require.NoError(t, err)
	// 2(x-4)+3(x-1) = 0  =>  x = 11/5.
	assert.InDelta(t, 2.2, root, 1e-5)
}

// TestOptions_Validate rejects non-positive caps and tolerances.
func TestOptions_Validate(t *testing.T) {
	f := func(x float64) float64 { return x }

	_, err := numeric.Secant(f, 0, -1, 1, numeric.Options{MaxIter: 0, Tol: 1e-6})
	assert.ErrorIs(t, err, numeric.ErrBadOptions)

	_, err = numeric.Bisect(f, -1, 1, numeric.Options{MaxIter: 10, Tol: 0})
	assert.ErrorIs(t, err, numeric.ErrBadOptions)
}
