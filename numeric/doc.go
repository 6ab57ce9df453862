// Package numeric provides small, bounded scalar root-finders shared by the
// iterative call sites of the distillation engine (bubble point, dew point,
// Underwood θ).
//
// 🚀 What is numeric?
//
//	Two deliberately simple solvers with one shape:
//	"bounded iterative root search with an explicit failure mode".
//	  • Secant — derivative-free quasi-Newton iteration for smooth equations
//	    without a known sign-change bracket (bubble/dew temperature).
//	  • Bisect — sign-change bracketed search for ill-conditioned equations
//	    with poles near the root (the Underwood auxiliary equation).
//
// ✨ Key guarantees:
//   - Hard iteration caps (default 100): a solver returns ErrMaxIterations
//     instead of spinning, never an unbounded loop.
//   - Search windows: Secant clamps every iterate into [Lo, Hi], so a wild
//     step cannot leave the physically plausible domain.
//   - Strict sentinels: ErrMaxIterations, ErrBadBracket, ErrBadInterval,
//     ErrNoProgress; callers decide whether failure is fatal or degradable.
//
// ⚙️ Usage:
//
//	opts := numeric.DefaultOptions()
//	root, err := numeric.Bisect(f, lo, hi, opts)
//	if err != nil {
//	  // fall back, or surface the failure
//	}
//
// Complexity: O(MaxIter) function evaluations, O(1) memory for both solvers.
package numeric
