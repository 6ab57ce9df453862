// Package distill is a pure-Go toolkit for approximate multicomponent
// distillation column design, from vapor-liquid equilibrium primitives to
// the classical shortcut design chain.
//
// 🚀 What is distill?
//
//	A self-contained chemical-engineering library that brings together:
//		• Property boundary: a narrow component-property interface plus a
//		  deterministic in-memory catalog (Antoine + Watson correlations)
//		• VLE: ideal K-values, relative volatilities, bubble & dew points
//		• Shortcut design: Fenske, Underwood, Gilliland and Kirkbride plus
//		  internal-flow estimates in one ordered pipeline
//		• Scalar solvers: small bounded secant & bisection root-finders shared
//		  by every iterative call site
//
// ✨ Why choose distill?
//
//   - Predictable numerics: bounded iteration caps, documented floors,
//     degraded-but-total fallbacks instead of NaN propagation
//   - Library-first: no I/O, no logging, no globals in the algorithm
//     packages; the cmd/distill CLI is a thin demo shell
//   - Pure Go: no cgo, no external property databases required
//
// Under the hood, everything is organized under four subpackages:
//
//	numeric/  — bounded scalar root-finders (secant, bisection)
//	props/    — component property interface, built-in & YAML catalogs
//	vle/      — equilibrium model: K-values, α, bubble/dew temperatures
//	shortcut/ — the Fenske→Underwood→Gilliland→Kirkbride design engine
//
// Quick ASCII sketch of the shortcut pipeline:
//
//	feed (F, z, P)
//	   │ key identification (LK/HK)
//	   ▼
//	material balance ─► Fenske ─► Underwood ─► Gilliland ─► Kirkbride
//	                                                           │
//	                                      Result ◄── internal flows
//
// Rigorous stage-by-stage (MESH) simulation, non-ideal activity models and
// hydraulic column sizing are deliberately out of scope.
//
//	go get github.com/lvchem/distill
package distill
