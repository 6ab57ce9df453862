package shortcut

import (
	"math"
	"sort"

	"github.com/lvchem/distill/vle"
)

// Engine designs one column for one feed. All fields are fixed at
// construction (including the key selection), every pipeline stage is a
// value-returning method, and nothing is mutated afterward — distinct
// engines are fully independent and a single engine tolerates concurrent
// readers.
type Engine struct {
	model *vle.Model

	feed     float64   // feed molar flow F
	pressure float64   // column pressure P
	z        []float64 // feed composition

	lk, hk int       // light/heavy key indices into the component vector
	alpha  []float64 // relative volatilities at the mean boiling temperature
	tFeed  float64   // mean boiling temperature backing alpha
}

// New constructs a design engine for a feed of F mol/time with composition
// z at column pressure P.
//
// Construction performs the two steps that fix the engine's identity:
//  1. Feed validation: F > 0, P > 0, every z_i ∈ [0,1], Σz = 1 within
//     CompositionTol.
//  2. Key identification: relative volatilities are evaluated at the mean
//     of the component boiling points; the light key is the most volatile
//     component whose feed fraction exceeds SignificanceThreshold, the
//     heavy key the next significant component down the volatility order.
//     Fewer than two significant components is a configuration error
//     (ErrKeysUndefined).
func New(model *vle.Model, F float64, z []float64, P float64) (*Engine, error) {
	// Stage 1: feed validation.
	if model == nil {
		return nil, ErrNilModel
	}
	if F <= 0 {
		return nil, ErrBadFlow
	}
	if P <= 0 {
		return nil, ErrBadPressure
	}
	if len(z) != model.NumComponents() {
		return nil, ErrDimensionMismatch
	}

	var sum float64
	for _, zi := range z {
		if zi < 0 || zi > 1 || math.IsNaN(zi) {
			return nil, ErrBadComposition
		}
		sum += zi
	}
	if math.Abs(sum-1) > CompositionTol {
		return nil, ErrBadComposition
	}

	e := &Engine{
		model:    model,
		feed:     F,
		pressure: P,
		z:        cloneVec(z),
	}

	// Stage 2: key identification, fixed for the engine's lifetime.
	if err := e.identifyKeys(); err != nil {
		return nil, err
	}

	return e, nil
}

// identifyKeys evaluates feed-side volatilities at the mean boiling
// temperature and selects the light and heavy keys.
func (e *Engine) identifyKeys() error {
	var tAvg float64
	for _, c := range e.model.Components() {
		tAvg += c.Tb()
	}
	tAvg /= float64(e.model.NumComponents())

	alpha, err := e.model.RelativeVolatilities(tAvg, e.pressure, -1)
	if err != nil {
		return err
	}
	e.alpha = alpha
	e.tFeed = tAvg

	// Indices sorted by descending volatility.
	order := make([]int, len(alpha))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return alpha[order[a]] > alpha[order[b]] })

	// Light key: most volatile significant component. Heavy key: the next
	// significant component down the volatility order — the two sides of
	// the split the column is asked to make. Trace components (at or below
	// the threshold) can therefore sit between the keys; the material
	// balance distributes them by α-interpolation.
	lk, hk := -1, -1
	for _, idx := range order {
		if e.z[idx] <= SignificanceThreshold {
			continue
		}
		if lk < 0 {
			lk = idx
			continue
		}
		hk = idx
		break
	}

	if lk < 0 || hk < 0 {
		return ErrKeysUndefined
	}
	e.lk, e.hk = lk, hk

	return nil
}

// Model returns the equilibrium model backing the engine.
func (e *Engine) Model() *vle.Model { return e.model }

// Feed returns the feed flow F.
func (e *Engine) Feed() float64 { return e.feed }

// Pressure returns the column pressure P.
func (e *Engine) Pressure() float64 { return e.pressure }

// Composition returns a copy of the feed composition z.
func (e *Engine) Composition() []float64 { return cloneVec(e.z) }

// Keys returns the light- and heavy-key component indices.
func (e *Engine) Keys() (lk, hk int) { return e.lk, e.hk }

// FeedVolatilities returns a copy of the relative volatilities evaluated at
// the mean boiling temperature (the feed-side reference used by the key
// selection, the material balance and the Underwood method).
func (e *Engine) FeedVolatilities() []float64 { return cloneVec(e.alpha) }

// cloneVec returns a copy of v.
func cloneVec(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
