package vle

import (
	"github.com/lvchem/distill/numeric"
	"github.com/lvchem/distill/props"
)

// Temperature window factors bounding every root search. Outside
// [windowLoFactor·min(Tb), windowHiFactor·max(Tb)] the property
// correlations have no physical meaning, so the solver never goes there.
const (
	windowLoFactor = 0.5
	windowHiFactor = 1.5
)

// Model is a stateless ideal-VLE model over a fixed component list.
// It holds no mutable state; a single Model is safe for concurrent readers.
type Model struct {
	comps []props.Component
}

// NewModel builds an equilibrium model over comps.
// The slice is copied; the caller may reuse or mutate its own copy.
func NewModel(comps []props.Component) (*Model, error) {
	if len(comps) == 0 {
		return nil, ErrNoComponents
	}
	for _, c := range comps {
		if c.Tb() <= 0 {
			return nil, props.ErrBadComponent
		}
	}

	own := make([]props.Component, len(comps))
	copy(own, comps)

	return &Model{comps: own}, nil
}

// Components returns the model's component list (read-only by convention).
func (m *Model) Components() []props.Component { return m.comps }

// NumComponents returns the component count.
func (m *Model) NumComponents() int { return len(m.comps) }

// KValues computes K_i = Psat_i(T)/P for every component.
// Provider vapor pressures are clamped with props.PsatFloor first, so every
// K is strictly positive — an undefined Psat degrades, it does not fail.
func (m *Model) KValues(T, P float64) ([]float64, error) {
	if P <= 0 {
		return nil, ErrBadPressure
	}

	K := make([]float64, len(m.comps))
	for i, c := range m.comps {
		K[i] = props.FloorPsat(c.Psat(T)) / P
	}

	return K, nil
}

// RelativeVolatilities computes α_i = K_i/K_ref at T, P.
// A negative refIndex selects the last (heaviest) component as reference,
// which is the conventional choice for a feed ordered light to heavy.
func (m *Model) RelativeVolatilities(T, P float64, refIndex int) ([]float64, error) {
	K, err := m.KValues(T, P)
	if err != nil {
		return nil, err
	}
	if refIndex < 0 {
		refIndex = len(K) - 1
	}
	if refIndex >= len(K) {
		return nil, ErrDimensionMismatch
	}

	kref := K[refIndex]
	alpha := make([]float64, len(K))
	for i, k := range K {
		alpha[i] = k / kref
	}

	return alpha, nil
}

// BubbleTemperature solves Σ K_i(T)·x_i = 1 for the temperature at which
// liquid of composition x starts to boil at pressure P, and returns the
// equilibrium vapor composition y = normalize(K·x).
//
// Algorithm Outline:
//  1. Initial guess: opts.TGuess, or the x-weighted mean boiling point.
//  2. Secant iteration on f(T) = Σ K_i(T)·x_i − 1, clamped to the
//     physically plausible window around the component boiling range.
//  3. On convergence, y_i = K_i·x_i renormalized to sum 1.
//
// Non-convergence is degraded, not fatal: the result echoes the guess and
// the input composition with Converged=false.
//
// Errors: only configuration errors (ErrBadPressure, ErrDimensionMismatch).
//
// Complexity: O(MaxIter·n) Psat evaluations for n components.
func (m *Model) BubbleTemperature(P float64, x []float64, opts *Options) (Flash, error) {
	tGuess, sopts, err := m.prepare(P, x, opts)
	if err != nil {
		return Flash{}, err
	}

	f := func(T float64) float64 {
		var sum float64
		for i, c := range m.comps {
			sum += props.FloorPsat(c.Psat(T)) / P * x[i]
		}

		return sum - 1
	}

	lo, hi := m.window()
	T, serr := numeric.Secant(f, tGuess, lo, hi, sopts)
	if serr != nil {
		// Degraded fallback: guess temperature, unchanged composition.
		return Flash{T: tGuess, Comp: cloneVec(x), Converged: false}, nil
	}

	y := make([]float64, len(x))
	for i, c := range m.comps {
		y[i] = props.FloorPsat(c.Psat(T)) / P * x[i]
	}
	normalize(y)

	return Flash{T: T, Comp: y, Converged: true}, nil
}

// DewTemperature solves Σ y_i/K_i(T) = 1 for the temperature at which vapor
// of composition y starts to condense at pressure P, and returns the
// equilibrium liquid composition x = normalize(y/K).
//
// Symmetric to BubbleTemperature, including the degraded fallback contract.
func (m *Model) DewTemperature(P float64, y []float64, opts *Options) (Flash, error) {
	tGuess, sopts, err := m.prepare(P, y, opts)
	if err != nil {
		return Flash{}, err
	}

	f := func(T float64) float64 {
		var sum float64
		for i, c := range m.comps {
			sum += y[i] * P / props.FloorPsat(c.Psat(T))
		}

		return sum - 1
	}

	lo, hi := m.window()
	T, serr := numeric.Secant(f, tGuess, lo, hi, sopts)
	if serr != nil {
		return Flash{T: tGuess, Comp: cloneVec(y), Converged: false}, nil
	}

	x := make([]float64, len(y))
	for i, c := range m.comps {
		x[i] = y[i] * P / props.FloorPsat(c.Psat(T))
	}
	normalize(x)

	return Flash{T: T, Comp: x, Converged: true}, nil
}

// prepare validates a flash request and resolves the initial guess and
// solver options.
func (m *Model) prepare(P float64, comp []float64, opts *Options) (float64, numeric.Options, error) {
	if P <= 0 {
		return 0, numeric.Options{}, ErrBadPressure
	}
	if len(comp) != len(m.comps) {
		return 0, numeric.Options{}, ErrDimensionMismatch
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	tGuess := o.TGuess
	if tGuess <= 0 {
		// Default guess: mole-fraction-weighted mean of boiling points.
		for i, c := range m.comps {
			tGuess += comp[i] * c.Tb()
		}
	}

	return tGuess, o.solverOptions(), nil
}

// window returns the bounded temperature search interval.
func (m *Model) window() (lo, hi float64) {
	lo, hi = m.comps[0].Tb(), m.comps[0].Tb()
	for _, c := range m.comps[1:] {
		if tb := c.Tb(); tb < lo {
			lo = tb
		} else if tb > hi {
			hi = tb
		}
	}

	return windowLoFactor * lo, windowHiFactor * hi
}

// normalize scales v in place to sum 1; a zero-sum vector is left as is.
func normalize(v []float64) {
	var sum float64
	for _, x := range v {
		sum += x
	}
	if sum == 0 {
		return
	}
	for i := range v {
		v[i] /= sum
	}
}

// cloneVec returns a copy of v.
func cloneVec(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
