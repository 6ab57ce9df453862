package shortcut

// MaterialBalance computes the overall column material balance from the two
// key recovery targets.
//
// Algorithm Outline:
//  1. Split the keys: LK_in_D = recLKD·F·z[LK], HK_in_B = recHKB·F·z[HK];
//     the complements stay in the opposite product.
//  2. Route every non-key by volatility relative to the keys:
//     – α_i > α_LK: entirely to the distillate,
//     – α_i < α_HK: entirely to the bottoms,
//     – between the keys: split by linear interpolation of α between
//     α_HK and α_LK. (Approximation without a stated error bound, kept
//     for compatibility with established shortcut practice.)
//  3. D, B are the column sums of the product-flow vectors; compositions
//     are the normalized vectors.
//
// Invariants: D+B = F and D·XD[i] + B·XB[i] = F·z[i] componentwise, within
// floating tolerance.
//
// Errors: ErrBadRecovery for recoveries outside (0,1).
//
// Complexity: O(n) over the component count.
func (e *Engine) MaterialBalance(recLKD, recHKB float64) (Balance, error) {
	if recLKD <= 0 || recLKD >= 1 || recHKB <= 0 || recHKB >= 1 {
		return Balance{}, ErrBadRecovery
	}

	var (
		n = len(e.z)
		d = make([]float64, n) // component flows into the distillate
		b = make([]float64, n) // component flows into the bottoms
	)

	// Keys split by the recovery targets.
	lkFeed := e.feed * e.z[e.lk]
	hkFeed := e.feed * e.z[e.hk]
	d[e.lk] = recLKD * lkFeed
	b[e.lk] = lkFeed - d[e.lk]
	b[e.hk] = recHKB * hkFeed
	d[e.hk] = hkFeed - b[e.hk]

	// Non-keys routed by volatility against the fixed feed-side alphas.
	span := e.alpha[e.lk] - e.alpha[e.hk]
	for i := 0; i < n; i++ {
		if i == e.lk || i == e.hk {
			continue
		}
		feed := e.feed * e.z[i]
		switch {
		case e.alpha[i] > e.alpha[e.lk]:
			d[i] = feed
		case e.alpha[i] < e.alpha[e.hk]:
			b[i] = feed
		default:
			frac := (e.alpha[i] - e.alpha[e.hk]) / span
			d[i] = frac * feed
			b[i] = (1 - frac) * feed
		}
	}

	var D, B float64
	for i := 0; i < n; i++ {
		D += d[i]
		B += b[i]
	}
	for i := 0; i < n; i++ {
		d[i] /= D
		b[i] /= B
	}

	return Balance{D: D, B: B, XD: d, XB: b}, nil
}
