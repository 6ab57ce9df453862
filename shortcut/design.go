package shortcut

// validateOptions checks internal consistency of design Options without
// touching the feed or the model. Complexity: O(1).
func validateOptions(o Options) error {
	if o.RecoveryLKD <= 0 || o.RecoveryLKD >= 1 || o.RecoveryHKB <= 0 || o.RecoveryHKB >= 1 {
		return ErrBadRecovery
	}
	if o.RFactor < 1 {
		return ErrBadRefluxFactor
	}
	if o.Q < 0 || o.Q > 1 {
		return ErrBadQuality
	}
	if o.Efficiency <= 0 || o.Efficiency > 1 {
		return ErrBadEfficiency
	}

	return nil
}

// CompleteShortcutDesign executes the whole shortcut pipeline in strict
// order — material balance, Fenske, Underwood, Gilliland, real plates,
// Kirkbride, internal flows — and aggregates the immutable Result.
//
// This is the engine's single orchestration entry point. It is idempotent
// and side-effect free: identical inputs against an identical property
// provider yield bit-for-bit identical results.
//
// No stage may be skipped or reordered; each consumes the previous stage's
// output:
//
//	balance ─► Fenske ─► Underwood ─► Gilliland ─► plates ─► Kirkbride ─► flows
//
// Errors are configuration errors only (see validateOptions and the stage
// methods); numerical degradation surfaces as Result.Degraded instead.
func (e *Engine) CompleteShortcutDesign(opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	// 1. Material balance.
	bal, err := e.MaterialBalance(opts.RecoveryLKD, opts.RecoveryHKB)
	if err != nil {
		return Result{}, err
	}

	// 2. Fenske: minimum plates at total reflux.
	nmin, alphaAvg, err := e.Fenske(bal)
	if err != nil {
		return Result{}, err
	}

	// 3. Underwood: minimum reflux.
	rmin, theta, degraded, err := e.Underwood(bal, opts.Q)
	if err != nil {
		return Result{}, err
	}

	// 4. Gilliland: theoretical plates at the operating reflux.
	R := opts.RFactor * rmin
	nTheoretical := Gilliland(nmin, rmin, R)

	// 5. Installed plates.
	nReal, err := RealPlates(nTheoretical, opts.Efficiency)
	if err != nil {
		return Result{}, err
	}

	// 6. Kirkbride: feed-stage location.
	nr, ns, feedStage, err := e.Kirkbride(bal, nReal)
	if err != nil {
		return Result{}, err
	}

	// 7. Internal flows under constant molar overflow; the liquid feed
	// fraction q joins the stripping-section liquid.
	L := R * bal.D
	V := L + bal.D
	lPrime := L + e.feed*opts.Q
	vPrime := V

	return Result{
		D:  bal.D,
		B:  bal.B,
		XD: bal.XD,
		XB: bal.XB,

		Nmin:     nmin,
		AlphaAvg: alphaAvg,

		Rmin:  rmin,
		Theta: theta,

		R:            R,
		Ntheoretical: nTheoretical,
		Nreal:        nReal,

		NR:        nr,
		NS:        ns,
		FeedStage: feedStage,

		L:      L,
		V:      V,
		LPrime: lPrime,
		VPrime: vPrime,

		LightKey:    e.lk,
		HeavyKey:    e.hk,
		RecoveryLKD: opts.RecoveryLKD,
		RecoveryHKB: opts.RecoveryHKB,
		Q:           opts.Q,
		Efficiency:  opts.Efficiency,

		Degraded: degraded,
	}, nil
}
