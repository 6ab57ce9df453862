package shortcut

// RefluxStudy sweeps the operating reflux factor across the given values
// and reports the resulting plate counts and feed stages.
//
// The study shares one material-balance/Fenske/Underwood prefix — those
// stages do not depend on the reflux factor — and re-runs only the
// Gilliland/Kirkbride tail per point, so a sweep costs one design plus a
// cheap tail per factor.
//
// Errors: ErrBadRefluxFactor when any factor is below 1, plus whatever the
// shared prefix reports.
func (e *Engine) RefluxStudy(opts Options, factors []float64) ([]StudyPoint, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	for _, f := range factors {
		if f < 1 {
			return nil, ErrBadRefluxFactor
		}
	}

	// Shared prefix.
	bal, err := e.MaterialBalance(opts.RecoveryLKD, opts.RecoveryHKB)
	if err != nil {
		return nil, err
	}
	nmin, _, err := e.Fenske(bal)
	if err != nil {
		return nil, err
	}
	rmin, _, _, err := e.Underwood(bal, opts.Q)
	if err != nil {
		return nil, err
	}

	points := make([]StudyPoint, 0, len(factors))
	for _, f := range factors {
		R := f * rmin
		nTheoretical := Gilliland(nmin, rmin, R)

		nReal, rerr := RealPlates(nTheoretical, opts.Efficiency)
		if rerr != nil {
			return nil, rerr
		}
		_, _, feedStage, kerr := e.Kirkbride(bal, nReal)
		if kerr != nil {
			return nil, kerr
		}

		points = append(points, StudyPoint{
			RFactor:      f,
			R:            R,
			Ntheoretical: nTheoretical,
			Nreal:        nReal,
			FeedStage:    feedStage,
		})
	}

	return points, nil
}
