package shortcut

import (
	"github.com/lvchem/distill/numeric"
)

// Underwood computes the minimum reflux ratio for feed quality q
// (liquid fraction; q = 1 is saturated liquid).
//
// Algorithm Outline:
//  1. Solve the auxiliary equation Σ α_i·z_i/(α_i−θ) = 1−q for θ. The
//     equation has a pole at every α_i; the root of interest is the unique
//     one strictly between α_HK and α_LK, so the search is a bisection on
//     the bracket (α_HK+m, α_LK−m) with a small margin m off the poles.
//  2. R_min = max(Σ α_i·x_D[i]/(α_i−θ) − 1, MinRefluxFloor). The 0.5 floor
//     encodes the physical lower bound.
//
// Bracketing failure (degenerate volatility spread, or no sign change on
// the shrunken bracket) is a degraded, non-fatal outcome: θ falls back to
// the midpoint of (α_HK, α_LK) and degraded=true is reported so the caller
// can flag the result. It is never an error.
//
// Errors: ErrBadQuality for q outside [0,1].
func (e *Engine) Underwood(bal Balance, q float64) (rmin, theta float64, degraded bool, err error) {
	if q < 0 || q > 1 {
		return 0, 0, false, ErrBadQuality
	}
	if len(bal.XD) != len(e.z) {
		return 0, 0, false, ErrDimensionMismatch
	}

	var (
		alphaHK = e.alpha[e.hk]
		alphaLK = e.alpha[e.lk]
	)

	f := func(th float64) float64 {
		var sum float64
		for i, a := range e.alpha {
			sum += a * e.z[i] / (a - th)
		}

		return sum - (1 - q)
	}

	lo, hi := alphaHK+underwoodMargin, alphaLK-underwoodMargin
	if lo < hi {
		theta, err = numeric.Bisect(f, lo, hi, numeric.DefaultOptions())
	}
	if lo >= hi || err != nil {
		// Degenerate spread or unbracketable root: midpoint fallback.
		theta = (alphaHK + alphaLK) / 2
		degraded = true
		err = nil
	}

	var sum float64
	for i, a := range e.alpha {
		sum += a * bal.XD[i] / (a - theta)
	}
	rmin = sum - 1
	if rmin < MinRefluxFloor {
		rmin = MinRefluxFloor
	}

	return rmin, theta, degraded, nil
}
