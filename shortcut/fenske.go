package shortcut

import "math"

// Fenske computes the minimum number of theoretical plates at total reflux.
//
// The key relative volatility α_LK/HK is evaluated at the mean of the two
// keys' boiling points (a proxy for the top/bottom average), then
//
//	N_min = ln[(x_D[LK]/x_D[HK]) / (x_B[LK]/x_B[HK])] / ln(α_LK/HK)
//
// Requires the material balance; undefined when either key vanishes from a
// product stream (ErrZeroKeyProduct) — the separation ratio would be 0/0.
//
// Returns N_min and the average key volatility α_LK/HK.
func (e *Engine) Fenske(bal Balance) (nmin, alphaAvg float64, err error) {
	if len(bal.XD) != len(e.z) || len(bal.XB) != len(e.z) {
		return 0, 0, ErrDimensionMismatch
	}
	if bal.XD[e.lk] == 0 || bal.XD[e.hk] == 0 || bal.XB[e.lk] == 0 || bal.XB[e.hk] == 0 {
		return 0, 0, ErrZeroKeyProduct
	}

	comps := e.model.Components()
	tAvg := (comps[e.lk].Tb() + comps[e.hk].Tb()) / 2

	alpha, aerr := e.model.RelativeVolatilities(tAvg, e.pressure, -1)
	if aerr != nil {
		return 0, 0, aerr
	}
	alphaAvg = alpha[e.lk] / alpha[e.hk]

	ratioD := bal.XD[e.lk] / bal.XD[e.hk]
	ratioB := bal.XB[e.lk] / bal.XB[e.hk]
	nmin = math.Log(ratioD/ratioB) / math.Log(alphaAvg)

	return nmin, alphaAvg, nil
}
