package shortcut

import "github.com/lvchem/distill/vle"

// Profiles estimates per-stage liquid/vapor compositions and temperatures
// for a completed design, counted from the top of the column.
//
// The liquid composition is interpolated linearly between the distillate
// (stage 1) and the bottoms (stage Nreal) and renormalized; the stage
// temperature is the bubble point of that liquid, seeded with the previous
// stage's temperature, and the vapor composition is the equilibrium vapor
// from the same solve. This is a sketch of the column, not a stage-by-stage
// simulation: it is meant for plotting and sanity checks.
//
// Bubble-point non-convergence degrades the affected stage (Converged =
// false, temperature = seed) without failing the profile — same contract
// as vle.Model.BubbleTemperature.
func (e *Engine) Profiles(res Result) []StageProfile {
	n := res.Nreal
	if n < 1 || len(res.XD) != len(e.z) || len(res.XB) != len(e.z) {
		return nil
	}

	stages := make([]StageProfile, 0, n)

	var prevT float64 // seed for the next stage's bubble solve
	for s := 1; s <= n; s++ {
		// Interpolation parameter: 0 at the top stage, 1 at the bottom.
		frac := 0.0
		if n > 1 {
			frac = float64(s-1) / float64(n-1)
		}

		x := make([]float64, len(e.z))
		var sum float64
		for i := range x {
			x[i] = res.XD[i] + frac*(res.XB[i]-res.XD[i])
			sum += x[i]
		}
		for i := range x {
			x[i] /= sum
		}

		opts := vle.DefaultOptions()
		opts.TGuess = prevT // 0 on the first stage selects the default guess

		fl, err := e.model.BubbleTemperature(e.pressure, x, &opts)
		if err != nil {
			// Only dimension/pressure errors are possible here, and both are
			// excluded by construction; skip the stage if it happens anyway.
			continue
		}
		prevT = fl.T

		stages = append(stages, StageProfile{
			Stage:     s,
			T:         fl.T,
			X:         x,
			Y:         fl.Comp,
			Feed:      s == res.FeedStage,
			Converged: fl.Converged,
		})
	}

	return stages
}
