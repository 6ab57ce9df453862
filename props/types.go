package props

import "errors"

// PsatFloor is the documented vapor-pressure floor (Pa). Consumers substitute
// it for a non-positive, NaN or otherwise undefined Psat so that downstream
// equations (logs, divisions) stay total instead of propagating zero or NaN.
const PsatFloor float64 = 1e-10

// Sentinel errors for catalog resolution and validation.
var (
	// ErrUnknownComponent indicates a requested component name is not present
	// in the catalog. This must surface before any engine is constructed.
	ErrUnknownComponent = errors.New("props: unknown component")

	// ErrBadComponent indicates a catalog entry with non-positive Tb, Tc, Pc
	// or MW, which cannot describe a real substance.
	ErrBadComponent = errors.New("props: component constants must be positive")

	// ErrEmptyCatalog indicates a catalog document with no component entries.
	ErrEmptyCatalog = errors.New("props: catalog contains no components")
)

// Component is the property capability the distillation engine requires per
// substance. All implementations must return strictly positive constants;
// Psat may return any value — consumers clamp it with PsatFloor.
//
// Units: Tb, Tc in K; Pc in Pa; MW in g/mol; Psat in Pa; Hvap in J/mol;
// CpLiquid in J/(mol·K).
type Component interface {
	// Name returns the catalog identifier of the substance.
	Name() string

	// Tb returns the normal boiling temperature (K).
	Tb() float64

	// Tc returns the critical temperature (K).
	Tc() float64

	// Pc returns the critical pressure (Pa).
	Pc() float64

	// Omega returns the acentric factor (dimensionless).
	Omega() float64

	// MW returns the molar mass (g/mol).
	MW() float64

	// Psat returns the saturation vapor pressure at T (Pa).
	Psat(T float64) float64

	// Hvap returns the molar heat of vaporization at T (J/mol).
	Hvap(T float64) float64

	// CpLiquid returns the liquid molar heat capacity at T (J/(mol·K)).
	CpLiquid(T float64) float64
}

// FloorPsat clamps a provider vapor pressure to PsatFloor when it is
// non-positive or NaN. Every consumer of Component.Psat goes through here.
func FloorPsat(p float64) float64 {
	if !(p > 0) { // catches p <= 0 and NaN in one comparison
		return PsatFloor
	}

	return p
}
