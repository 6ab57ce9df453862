package shortcut

import "math"

// Kirkbride locates the feed stage for a column of nReal installed plates.
//
// The empirical split between rectifying (N_R) and stripping (N_S) plates:
//
//	N_R/N_S = [ (B/D)·(z[HK]/z[LK])·(x_B[LK]/x_D[HK])² ]^0.206
//
// combined with N_R + N_S = nReal gives N_S = nReal/(1 + N_R/N_S) and
// N_R = nReal − N_S. The feed stage is ceil(N_R)+1, 1-indexed from the
// top; N_R and N_S are reported as ceil/floor respectively, keeping their
// sum within one plate of nReal.
//
// Errors: ErrBadPlateCount for nReal < 1, ErrDimensionMismatch for a
// foreign balance.
func (e *Engine) Kirkbride(bal Balance, nReal int) (nr, ns, feedStage int, err error) {
	if nReal < 1 {
		return 0, 0, 0, ErrBadPlateCount
	}
	if len(bal.XD) != len(e.z) || len(bal.XB) != len(e.z) {
		return 0, 0, 0, ErrDimensionMismatch
	}

	keyRatio := bal.XB[e.lk] / bal.XD[e.hk]
	ratio := (bal.B / bal.D) * (e.z[e.hk] / e.z[e.lk]) * keyRatio * keyRatio

	// ε inside the log guards a collapsed ratio (e.g. x_B[LK] → 0).
	nrOverNS := math.Exp(0.206 * math.Log(ratio+kirkbrideEps))

	fNS := float64(nReal) / (1 + nrOverNS)
	fNR := float64(nReal) - fNS

	return int(math.Ceil(fNR)), int(math.Floor(fNS)), int(math.Ceil(fNR)) + 1, nil
}
