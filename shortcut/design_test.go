package shortcut_test

import (
	"math"
	"testing"

	"github.com/lvchem/distill/shortcut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteShortcutDesign_EquimolarBTX(t *testing.T) {
	eng := btxEngine(t, 100, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3})

	res, err := eng.CompleteShortcutDesign(shortcut.DefaultOptions())
	require.NoError(t, err)

	// Material balance.
	assert.InDelta(t, 33.333, res.D, 0.01)
	assert.InDelta(t, 66.667, res.B, 0.01)
	assert.InDelta(t, 0.95, res.XD[0], 1e-9)
	assert.Zero(t, res.XD[2])

	// Keys.
	assert.Equal(t, 0, res.LightKey)
	assert.Equal(t, 1, res.HeavyKey)

	// Pipeline stages.
	assert.InDelta(t, 6.529, res.Nmin, 0.01)
	assert.InDelta(t, 2.464, res.AlphaAvg, 0.005)
	assert.InDelta(t, 3.859, res.Theta, 0.005)
	assert.InDelta(t, 1.366, res.Rmin, 0.005)
	assert.InDelta(t, 1.775, res.R, 0.01)
	assert.InDelta(t, 7.559, res.Ntheoretical, 0.02)
	assert.Equal(t, 11, res.Nreal)
	assert.Equal(t, 6, res.NR)
	assert.Equal(t, 5, res.NS)
	assert.Equal(t, 7, res.FeedStage)

	// Internal flows under constant molar overflow.
	assert.InDelta(t, res.R*res.D, res.L, 1e-12)
	assert.InDelta(t, res.L+res.D, res.V, 1e-12)
	assert.InDelta(t, res.L+100*res.Q, res.LPrime, 1e-12)
	assert.Equal(t, res.V, res.VPrime)
	assert.InDelta(t, 59.18, res.L, 0.01)
	assert.InDelta(t, 92.52, res.V, 0.01)
	assert.InDelta(t, 159.18, res.LPrime, 0.01)

	assert.False(t, res.Degraded)
}

func TestCompleteShortcutDesign_StructuralInvariants(t *testing.T) {
	eng := btxEngine(t, 60, []float64{0.2, 0.5, 0.3})

	opts := shortcut.DefaultOptions()
	opts.RecoveryLKD = 0.9
	opts.RecoveryHKB = 0.85
	opts.Q = 0.5

	res, err := eng.CompleteShortcutDesign(opts)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, float64(res.Nreal), res.Ntheoretical)
	assert.Greater(t, res.Ntheoretical, res.Nmin)
	assert.Greater(t, res.R, res.Rmin)
	assert.GreaterOrEqual(t, res.FeedStage, 1)
	assert.LessOrEqual(t, res.FeedStage, res.Nreal+1)
	assert.InDelta(t, float64(res.Nreal), float64(res.NR+res.NS), 1)
	assert.InDelta(t, 60, res.D+res.B, 1e-9)

	assert.False(t, math.IsNaN(res.Theta))
}

func TestCompleteShortcutDesign_Idempotent(t *testing.T) {
	eng := btxEngine(t, 100, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3})

	first, err := eng.CompleteShortcutDesign(shortcut.DefaultOptions())
	require.NoError(t, err)
	second, err := eng.CompleteShortcutDesign(shortcut.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must reproduce bit-for-bit")
}

func TestCompleteShortcutDesign_DegradedPropagates(t *testing.T) {
	eng := ratioEngine(t, 1.015)

	res, err := eng.CompleteShortcutDesign(shortcut.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Degraded)
}

func TestCompleteShortcutDesign_OptionValidation(t *testing.T) {
	eng := btxEngine(t, 100, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3})

	cases := []struct {
		name   string
		mutate func(*shortcut.Options)
		want   error
	}{
		{"recovery zero", func(o *shortcut.Options) { o.RecoveryLKD = 0 }, shortcut.ErrBadRecovery},
		{"recovery one", func(o *shortcut.Options) { o.RecoveryHKB = 1 }, shortcut.ErrBadRecovery},
		{"reflux factor below one", func(o *shortcut.Options) { o.RFactor = 0.9 }, shortcut.ErrBadRefluxFactor},
		{"negative quality", func(o *shortcut.Options) { o.Q = -0.1 }, shortcut.ErrBadQuality},
		{"quality above one", func(o *shortcut.Options) { o.Q = 1.5 }, shortcut.ErrBadQuality},
		{"zero efficiency", func(o *shortcut.Options) { o.Efficiency = 0 }, shortcut.ErrBadEfficiency},
		{"efficiency above one", func(o *shortcut.Options) { o.Efficiency = 1.1 }, shortcut.ErrBadEfficiency},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := shortcut.DefaultOptions()
			tc.mutate(&opts)

			_, err := eng.CompleteShortcutDesign(opts)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
