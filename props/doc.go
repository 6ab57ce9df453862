// Package props defines the chemical property boundary of the distillation
// engine: the narrow Component interface every consumer depends on, plus a
// deterministic in-memory implementation and catalogs to satisfy it without
// any external data source.
//
// 🚀 What is props?
//
//	The engine never fetches property data itself — it receives it through
//	this boundary. A Component must answer:
//	  • Constants: Tb, Tc, Pc (SI), acentric factor ω, molar mass MW
//	  • Functions of temperature: Psat(T), Hvap(T), CpLiquid(T)
//
// ✨ Key features:
//   - StaticComponent: extended-Antoine vapor pressure, Watson-scaled heat
//     of vaporization, linear liquid heat capacity — deterministic, cheap,
//     and good enough for shortcut-level design work
//   - Builtin(): a ready catalog (BTX aromatics plus common solvents)
//   - LoadCatalog / LoadCatalogFile: user catalogs from YAML
//   - EstimateOmega: Lee–Kesler acentric factor from Tb, Tc, Pc when a
//     catalog entry omits ω
//   - PsatFloor: the documented 1e-10 Pa floor consumers substitute for
//     non-positive or undefined vapor pressure, keeping every downstream
//     equation total
//
// ⚙️ Usage:
//
//	cat := props.Builtin()
//	comps, err := cat.Resolve("benzene", "toluene", "o-xylene")
//	if err != nil {
//	  // props.ErrUnknownComponent — surface before building any engine
//	}
//
// All values are SI: K, Pa, g/mol, J/mol, J/(mol·K).
package props
