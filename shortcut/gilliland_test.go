package shortcut_test

import (
	"testing"

	"github.com/lvchem/distill/shortcut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGilliland_EquimolarBTX(t *testing.T) {
	nTheo := shortcut.Gilliland(6.5295, 1.3657, 1.3*1.3657)
	assert.InDelta(t, 7.559, nTheo, 0.02)
}

func TestGilliland_TotalRefluxLimit(t *testing.T) {
	// As R grows far beyond R_min the plate count approaches N_min.
	const nmin, rmin = 6.5295, 1.3657

	nTheo := shortcut.Gilliland(nmin, rmin, 50*rmin)
	assert.InDelta(t, nmin, nTheo, 0.05)
	assert.Greater(t, nTheo, nmin)
}

func TestGilliland_MinimumRefluxBlowsUp(t *testing.T) {
	// At R = R_min the correlation must demand an enormous plate count.
	nTheo := shortcut.Gilliland(6.5295, 1.3657, 1.3657)
	assert.Greater(t, nTheo, 1e8)
}

func TestGilliland_MonotoneInReflux(t *testing.T) {
	const nmin, rmin = 6.5295, 1.3657

	prev := shortcut.Gilliland(nmin, rmin, 1.05*rmin)
	for _, f := range []float64{1.2, 1.5, 2, 4, 10} {
		cur := shortcut.Gilliland(nmin, rmin, f*rmin)
		assert.Less(t, cur, prev, "factor %v", f)
		prev = cur
	}
}

func TestRealPlates(t *testing.T) {
	n, err := shortcut.RealPlates(7.559, 0.70)
	require.NoError(t, err)
	assert.Equal(t, 11, n)

	n, err = shortcut.RealPlates(7.0, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = shortcut.RealPlates(7.559, 0)
	assert.ErrorIs(t, err, shortcut.ErrBadEfficiency)

	_, err = shortcut.RealPlates(7.559, 1.2)
	assert.ErrorIs(t, err, shortcut.ErrBadEfficiency)
}
