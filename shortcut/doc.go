// Package shortcut implements approximate multicomponent distillation
// column design by the classical shortcut chain:
// Fenske → Underwood → Gilliland → Kirkbride → internal flows.
//
// 🚀 What is shortcut?
//
//	Given a feed (F, z, P), recovery targets for the two key components and
//	an operating reflux factor, the Engine produces a complete approximate
//	column design:
//	  • Key identification:  LK/HK selected once, at construction
//	  • Material balance:    key split by recoveries, non-keys routed by
//	    volatility (α-interpolated between the keys)
//	  • Fenske:              minimum plates N_min at total reflux
//	  • Underwood:           minimum reflux R_min via the θ root between
//	    α_HK and α_LK
//	  • Gilliland:           theoretical plates at the operating reflux
//	  • Kirkbride:           feed-stage location from the N_R/N_S split
//	  • Internal flows:      L, V, L', V' under constant molar overflow
//
// ✨ Design principles:
//   - Explicit, ordered pipeline: each stage is a value-returning method
//     consuming the previous stage's output; no hidden cached state, so an
//     Engine is safe for concurrent readers and every stage is testable in
//     isolation.
//   - Strict sentinels for configuration errors; numerical non-convergence
//     (an unbracketable Underwood root) degrades to a documented fallback
//     and is flagged on the result, never silently absorbed.
//   - Documented floors: R_min never drops below 0.5; the Gilliland and
//     Kirkbride correlations carry their 1e-10 stabilizers against the
//     X→0 and ratio→0 singularities.
//
// ⚙️ Usage:
//
//	eng, err := shortcut.New(model, 100, []float64{1/3.0, 1/3.0, 1/3.0}, 101325)
//	res, err := eng.CompleteShortcutDesign(shortcut.DefaultOptions())
//	// res.Nmin, res.Rmin, res.Nreal, res.FeedStage, res.L, res.V, ...
//
// The non-key distribution rule (linear α-interpolation between the keys)
// is an approximation with no stated error bound, kept for compatibility
// with established shortcut practice; it is not a validated physical law.
//
// Rigorous stage-by-stage (MESH) simulation is out of scope.
package shortcut
