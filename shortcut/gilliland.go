package shortcut

import "math"

// Gilliland estimates the theoretical plate count at operating reflux R
// from the minimum plates and minimum reflux, via the Gilliland
// correlation in its Molokanov exponential form:
//
//	X = (R − R_min)/(R + 1)
//	Y = 1 − exp[ (1+54.4X)(X−1) / ((11+117.2X)·√(X+ε)) ]
//	N = N_min + Y/(1 − Y + ε)
//
// The ε = 1e-10 terms stabilize the correlation at its boundaries: the
// square root at X→0 (R = R_min) and the plate expression at Y→1. As
// R → ∞, X → 1, the exponent vanishes and N → N_min, the total-reflux
// limit.
//
// Pure function of its arguments; no engine state involved.
func Gilliland(nmin, rmin, R float64) float64 {
	X := (R - rmin) / (R + 1)

	exponent := (1 + 54.4*X) * (X - 1) / ((11 + 117.2*X) * math.Sqrt(X+gillilandEps))
	Y := 1 - math.Exp(exponent)

	return nmin + Y/(1-Y+gillilandEps)
}

// RealPlates converts a theoretical plate count into an installed plate
// count with an overall efficiency in (0,1]: ceil(N_theoretical/efficiency).
func RealPlates(nTheoretical, efficiency float64) (int, error) {
	if efficiency <= 0 || efficiency > 1 {
		return 0, ErrBadEfficiency
	}

	return int(math.Ceil(nTheoretical / efficiency)), nil
}
