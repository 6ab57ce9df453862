// Package vle implements the ideal vapor–liquid equilibrium model behind
// the shortcut distillation engine.
//
// 🚀 What is vle?
//
//	A stateless set of numeric functions over a fixed component list:
//	  • K-values:              K_i = Psat_i(T) / P
//	  • Relative volatilities: α_i = K_i / K_ref
//	  • Bubble temperature:    solve Σ K_i(T)·x_i = 1 for T
//	  • Dew temperature:       solve Σ y_i / K_i(T) = 1 for T
//	  • Mixture enthalpies:    ideal-mixture liquid and vapor enthalpy
//
// ✨ Numeric contract:
//   - Every K-value is strictly positive: provider vapor pressures are
//     clamped with props.PsatFloor before any division or logarithm.
//   - The temperature search is bounded to a plausible window around the
//     component boiling range and capped at a fixed iteration count.
//   - Solver non-convergence is a degraded, non-fatal outcome: bubble/dew
//     return the initial guess and the input composition with
//     Converged=false, never an error. Callers must tolerate it.
//
// ⚙️ Usage:
//
//	model, err := vle.NewModel(comps)
//	fl, err := model.BubbleTemperature(101325, []float64{0.5, 0.5}, nil)
//	// fl.T, fl.Comp (vapor composition), fl.Converged
//
// The model holds only the component slice; distinct models are fully
// independent and a single model is safe for concurrent readers.
package vle
