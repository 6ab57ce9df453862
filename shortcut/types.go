package shortcut

import "errors"

// Tunable constants of the shortcut method.
const (
	// SignificanceThreshold is the feed mole fraction below which a
	// component cannot serve as a key.
	SignificanceThreshold = 0.01

	// CompositionTol is the allowed deviation of Σz from 1.
	CompositionTol = 0.02

	// MinRefluxFloor is the physical lower bound applied to the Underwood
	// minimum reflux.
	MinRefluxFloor = 0.5

	// underwoodMargin keeps the θ bracket strictly inside (α_HK, α_LK),
	// away from the poles at the key volatilities.
	underwoodMargin = 0.01

	// gillilandEps stabilizes the Gilliland correlation at its X→0 and
	// Y→1 boundaries.
	gillilandEps = 1e-10

	// kirkbrideEps stabilizes the Kirkbride logarithm when the flow/
	// composition ratio collapses toward zero.
	kirkbrideEps = 1e-10
)

// Sentinel errors. All of these are configuration errors: the caller must
// fix the input; none of them is produced by mere numerical difficulty.
var (
	// ErrNilModel indicates a nil equilibrium model.
	ErrNilModel = errors.New("shortcut: equilibrium model is nil")

	// ErrBadFlow indicates a non-positive feed flow.
	ErrBadFlow = errors.New("shortcut: feed flow must be positive")

	// ErrBadPressure indicates a non-positive column pressure.
	ErrBadPressure = errors.New("shortcut: column pressure must be positive")

	// ErrDimensionMismatch indicates a feed composition whose length does
	// not match the model's component count.
	ErrDimensionMismatch = errors.New("shortcut: feed composition length does not match component count")

	// ErrBadComposition indicates a feed mole fraction outside [0,1] or a
	// composition sum deviating from 1 by more than CompositionTol.
	ErrBadComposition = errors.New("shortcut: feed composition must be mole fractions summing to 1")

	// ErrKeysUndefined indicates fewer than two components exceed
	// SignificanceThreshold, so light/heavy keys cannot be identified.
	ErrKeysUndefined = errors.New("shortcut: fewer than two significant components, keys undefined")

	// ErrBadRecovery indicates a recovery fraction outside (0,1).
	ErrBadRecovery = errors.New("shortcut: recovery fractions must lie in (0,1)")

	// ErrBadRefluxFactor indicates an operating reflux factor below 1.
	ErrBadRefluxFactor = errors.New("shortcut: reflux factor must be >= 1")

	// ErrBadQuality indicates a feed quality outside [0,1].
	ErrBadQuality = errors.New("shortcut: feed quality q must lie in [0,1]")

	// ErrBadEfficiency indicates a plate efficiency outside (0,1].
	ErrBadEfficiency = errors.New("shortcut: plate efficiency must lie in (0,1]")

	// ErrZeroKeyProduct indicates a key component with zero composition in
	// a product stream, which makes the Fenske separation ratio undefined.
	ErrZeroKeyProduct = errors.New("shortcut: key component composition is zero in a product stream")

	// ErrBadPlateCount indicates a non-positive real plate count passed to
	// the Kirkbride split.
	ErrBadPlateCount = errors.New("shortcut: real plate count must be positive")
)

// Options configures one complete shortcut design.
//
// RecoveryLKD – fraction of the light key recovered in the distillate.
// RecoveryHKB – fraction of the heavy key recovered in the bottoms.
// RFactor     – operating reflux multiplier, R = RFactor·R_min (must be ≥ 1).
// Q           – feed quality: liquid fraction, 1 = saturated liquid.
// Efficiency  – overall plate efficiency in (0,1].
type Options struct {
	RecoveryLKD float64
	RecoveryHKB float64
	RFactor     float64
	Q           float64
	Efficiency  float64
}

// DefaultOptions returns the conventional design defaults:
// 95% key recoveries, R = 1.3·R_min, saturated liquid feed, 70% efficiency.
func DefaultOptions() Options {
	return Options{
		RecoveryLKD: 0.95,
		RecoveryHKB: 0.95,
		RFactor:     1.3,
		Q:           1.0,
		Efficiency:  0.70,
	}
}

// Balance is the overall material balance: product flows and compositions.
//
// Invariants (within floating tolerance): D+B = F, Σ XD = Σ XB = 1, and
// componentwise conservation D·XD[i] + B·XB[i] = F·z[i].
type Balance struct {
	D  float64   // distillate molar flow
	B  float64   // bottoms molar flow
	XD []float64 // distillate composition
	XB []float64 // bottoms composition
}

// Result is the immutable outcome of one complete shortcut design.
// All fields are plain numbers or fixed-length vectors; a Result is safe to
// share read-only across goroutines and trivially serializable.
type Result struct {
	// Material balance.
	D  float64   `json:"d"`
	B  float64   `json:"b"`
	XD []float64 `json:"x_d"`
	XB []float64 `json:"x_b"`

	// Fenske.
	Nmin     float64 `json:"n_min"`
	AlphaAvg float64 `json:"alpha_avg"`

	// Underwood.
	Rmin  float64 `json:"r_min"`
	Theta float64 `json:"theta"`

	// Gilliland and plate counts.
	R            float64 `json:"r"`
	Ntheoretical float64 `json:"n_theoretical"`
	Nreal        int     `json:"n_real"`

	// Kirkbride split; NR+NS tracks Nreal within integer rounding and
	// FeedStage is 1-indexed from the top.
	NR        int `json:"n_r"`
	NS        int `json:"n_s"`
	FeedStage int `json:"feed_stage"`

	// Internal flows under constant molar overflow: rectifying L, V and
	// stripping LPrime, VPrime.
	L      float64 `json:"l"`
	V      float64 `json:"v"`
	LPrime float64 `json:"l_prime"`
	VPrime float64 `json:"v_prime"`

	// Echo of the design inputs.
	LightKey    int     `json:"light_key"`
	HeavyKey    int     `json:"heavy_key"`
	RecoveryLKD float64 `json:"recovery_lk_d"`
	RecoveryHKB float64 `json:"recovery_hk_b"`
	Q           float64 `json:"q"`
	Efficiency  float64 `json:"efficiency"`

	// Degraded reports that a numerical fallback was taken somewhere in
	// the pipeline (an unbracketable Underwood root); the result is usable
	// but approximate beyond the method's usual accuracy.
	Degraded bool `json:"degraded"`
}

// StudyPoint is one row of a reflux-factor parametric study.
type StudyPoint struct {
	RFactor      float64 `json:"r_factor"`
	R            float64 `json:"r"`
	Ntheoretical float64 `json:"n_theoretical"`
	Nreal        int     `json:"n_real"`
	FeedStage    int     `json:"feed_stage"`
}

// StageProfile is the estimated state of one theoretical stage, counted
// from the top of the column.
type StageProfile struct {
	Stage     int       `json:"stage"`
	T         float64   `json:"t"`
	X         []float64 `json:"x"`
	Y         []float64 `json:"y"`
	Feed      bool      `json:"feed"`
	Converged bool      `json:"converged"`
}
