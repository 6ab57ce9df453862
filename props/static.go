package props

import "math"

// StaticComponent is a deterministic, in-memory Component backed by three
// classical correlations:
//
//   - Vapor pressure: Antoine, log10(Psat[bar]) = A - B/(T + C), T in K.
//   - Heat of vaporization: Watson scaling from the value at the normal
//     boiling point, Hvap(T) = Hvap(Tb) · ((1-T/Tc)/(1-Tb/Tc))^0.38.
//   - Liquid heat capacity: linear in T, Cp(T) = CpA + CpB·T.
//
// A StaticComponent is a plain value: copy it freely, share it across
// goroutines, feed it to as many engines as you like.
type StaticComponent struct {
	CompName string // catalog identifier

	BoilingPoint   float64 // normal boiling temperature Tb (K)
	CriticalT      float64 // critical temperature Tc (K)
	CriticalP      float64 // critical pressure Pc (Pa)
	AcentricFactor float64 // acentric factor ω (dimensionless)
	MolarMass      float64 // molar mass MW (g/mol)

	AntoineA float64 // Antoine A (bar, K basis)
	AntoineB float64 // Antoine B (K)
	AntoineC float64 // Antoine C (K)

	HvapBoil float64 // heat of vaporization at Tb (J/mol)
	CpA      float64 // liquid Cp intercept (J/(mol·K))
	CpB      float64 // liquid Cp slope (J/(mol·K²))
}

// Name implements Component.
func (c StaticComponent) Name() string { return c.CompName }

// Tb implements Component.
func (c StaticComponent) Tb() float64 { return c.BoilingPoint }

// Tc implements Component.
func (c StaticComponent) Tc() float64 { return c.CriticalT }

// Pc implements Component.
func (c StaticComponent) Pc() float64 { return c.CriticalP }

// Omega implements Component.
func (c StaticComponent) Omega() float64 { return c.AcentricFactor }

// MW implements Component.
func (c StaticComponent) MW() float64 { return c.MolarMass }

// Psat evaluates the Antoine correlation at T and converts bar to Pa.
// Outside the correlation's validity (T + C <= 0) it returns PsatFloor.
func (c StaticComponent) Psat(T float64) float64 {
	den := T + c.AntoineC
	if den <= 0 {
		return PsatFloor
	}

	return FloorPsat(1e5 * math.Pow(10, c.AntoineA-c.AntoineB/den))
}

// Hvap evaluates the Watson correlation anchored at the normal boiling
// point. At or above Tc the latent heat vanishes, so it returns 0.
func (c StaticComponent) Hvap(T float64) float64 {
	if T >= c.CriticalT {
		return 0
	}

	return c.HvapBoil * math.Pow((1-T/c.CriticalT)/(1-c.BoilingPoint/c.CriticalT), 0.38)
}

// CpLiquid evaluates the linear liquid heat capacity correlation.
func (c StaticComponent) CpLiquid(T float64) float64 {
	return c.CpA + c.CpB*T
}

// validate rejects entries that cannot describe a real substance.
func (c StaticComponent) validate() error {
	if c.BoilingPoint <= 0 || c.CriticalT <= 0 || c.CriticalP <= 0 || c.MolarMass <= 0 {
		return ErrBadComponent
	}

	return nil
}

// EstimateOmega estimates the acentric factor from the normal boiling point
// and the critical constants via the Lee–Kesler vapor-pressure relation.
// Used when a catalog entry omits ω; not a substitute for measured data.
//
// Inputs in SI: Tb, Tc in K, Pc in Pa.
func EstimateOmega(Tb, Tc, Pc float64) float64 {
	var (
		pbr = 101325.0 / Pc // reduced pressure at the normal boiling point
		tbr = Tb / Tc       // reduced normal boiling temperature
	)

	num := math.Log(pbr) - 5.92714 + 6.09648/tbr + 1.28862*math.Log(tbr) - 0.169347*math.Pow(tbr, 6)
	den := 15.2518 - 15.6875/tbr - 13.4721*math.Log(tbr) + 0.43577*math.Pow(tbr, 6)

	return num / den
}
