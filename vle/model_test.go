package vle_test

import (
	"testing"

	"github.com/lvchem/distill/props"
	"github.com/lvchem/distill/vle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// btxModel builds the benzene/toluene/o-xylene reference model.
func btxModel(t *testing.T) *vle.Model {
	t.Helper()

	comps, err := props.Builtin().Resolve("benzene", "toluene", "o-xylene")
	require.NoError(t, err)
	model, err := vle.NewModel(comps)
	require.NoError(t, err)

	return model
}

// floorComp is a pathological provider whose vapor pressure is never
// defined; consumers must see props.PsatFloor, not zero.
type floorComp struct{ props.StaticComponent }

func (floorComp) Psat(float64) float64 { return -1 }

const atm = 101325.0

// TestNewModel_Empty rejects an empty component list.
func TestNewModel_Empty(t *testing.T) {
	_, err := vle.NewModel(nil)
	assert.ErrorIs(t, err, vle.ErrNoComponents)
}

// TestKValues_OrderAndPositivity checks K ordering by volatility and the
// strict-positivity contract.
func TestKValues_OrderAndPositivity(t *testing.T) {
	model := btxModel(t)

	K, err := model.KValues(384.86, atm)
	require.NoError(t, err)
	require.Len(t, K, 3)

	// More volatile components have larger K at a common T.
	assert.Greater(t, K[0], K[1], "benzene more volatile than toluene")
	assert.Greater(t, K[1], K[2], "toluene more volatile than o-xylene")
	for i, k := range K {
		assert.Positive(t, k, "K[%d] must be strictly positive", i)
	}
}

// TestKValues_BadPressure rejects non-positive pressure.
func TestKValues_BadPressure(t *testing.T) {
	model := btxModel(t)

	_, err := model.KValues(350, 0)
	assert.ErrorIs(t, err, vle.ErrBadPressure)
}

// TestKValues_ProviderFloor verifies the PsatFloor substitution for an
// undefined provider value.
func TestKValues_ProviderFloor(t *testing.T) {
	base, err := props.Builtin().Resolve("benzene")
	require.NoError(t, err)

	model, err := vle.NewModel([]props.Component{
		floorComp{base[0].(props.StaticComponent)},
	})
	require.NoError(t, err)

	K, err := model.KValues(350, atm)
	require.NoError(t, err)
	assert.Equal(t, props.PsatFloor/atm, K[0], "undefined Psat degrades to the floor")
}

// TestRelativeVolatilities_DefaultReference checks α against the heaviest
// component: the reference itself must be exactly 1.
func TestRelativeVolatilities_DefaultReference(t *testing.T) {
	model := btxModel(t)

	alpha, err := model.RelativeVolatilities(384.86, atm, -1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, alpha[2], "reference volatility is exactly 1")
	assert.InDelta(t, 6.257, alpha[0], 0.01, "benzene vs o-xylene")
	assert.InDelta(t, 2.675, alpha[1], 0.01, "toluene vs o-xylene")
}

// TestBubbleTemperature_PureComponent recovers the normal boiling point at
// 1 atm for an essentially pure liquid.
func TestBubbleTemperature_PureComponent(t *testing.T) {
	model := btxModel(t)

	fl, err := model.BubbleTemperature(atm, []float64{1, 0, 0}, nil)
	require.NoError(t, err)
	assert.True(t, fl.Converged)
	assert.InDelta(t, 353.24, fl.T, 0.1, "bubble T of pure benzene is its Tb")
	assert.InDelta(t, 1.0, fl.Comp[0], 1e-9, "vapor is pure benzene")
}

// TestBubbleTemperature_Mixture checks the equimolar BTX bubble point and
// that the vapor is enriched in the light component.
func TestBubbleTemperature_Mixture(t *testing.T) {
	model := btxModel(t)
	x := []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}

	fl, err := model.BubbleTemperature(atm, x, nil)
	require.NoError(t, err)
	require.True(t, fl.Converged)
	assert.InDelta(t, 375.96, fl.T, 0.1)

	var sum float64
	for _, y := range fl.Comp {
		sum += y
	}
	assert.InDelta(t, 1.0, sum, 1e-9, "vapor composition sums to 1")
	assert.Greater(t, fl.Comp[0], x[0], "vapor enriched in benzene")
	assert.Less(t, fl.Comp[2], x[2], "vapor depleted in o-xylene")
}

// TestDewTemperature_Mixture checks the equimolar BTX dew point sits above
// the bubble point and the liquid is enriched in the heavy component.
func TestDewTemperature_Mixture(t *testing.T) {
	model := btxModel(t)
	y := []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}

	fl, err := model.DewTemperature(atm, y, nil)
	require.NoError(t, err)
	require.True(t, fl.Converged)
	assert.InDelta(t, 394.42, fl.T, 0.1)
	assert.Greater(t, fl.Comp[2], y[2], "liquid enriched in o-xylene")

	bub, err := model.BubbleTemperature(atm, y, nil)
	require.NoError(t, err)
	assert.Greater(t, fl.T, bub.T, "dew point above bubble point for a mixture")
}

// TestBubbleTemperature_DegradedFallback verifies the non-fatal fallback:
// with a floor-only provider the residual is constant, the secant cannot
// move, and the result echoes the guess and input composition.
func TestBubbleTemperature_DegradedFallback(t *testing.T) {
	base, err := props.Builtin().Resolve("benzene", "toluene")
	require.NoError(t, err)

	model, err := vle.NewModel([]props.Component{
		floorComp{base[0].(props.StaticComponent)},
		floorComp{base[1].(props.StaticComponent)},
	})
	require.NoError(t, err)

	x := []float64{0.4, 0.6}
	opts := vle.DefaultOptions()
	opts.TGuess = 360

	fl, err := model.BubbleTemperature(atm, x, &opts)
	require.NoError(t, err, "non-convergence is degraded, never an error")
	assert.False(t, fl.Converged)
	assert.Equal(t, 360.0, fl.T, "falls back to the initial guess")
	assert.Equal(t, x, fl.Comp, "composition passes through unchanged")
}

// TestBubbleTemperature_DimensionMismatch rejects a composition of the
// wrong length as a configuration error.
func TestBubbleTemperature_DimensionMismatch(t *testing.T) {
	model := btxModel(t)

	_, err := model.BubbleTemperature(atm, []float64{0.5, 0.5}, nil)
	assert.ErrorIs(t, err, vle.ErrDimensionMismatch)
}

// TestMixtureEnthalpy checks sign and ordering of the ideal-mixture
// enthalpies: vapor above liquid by the latent contribution.
func TestMixtureEnthalpy(t *testing.T) {
	model := btxModel(t)
	x := []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}

	hl, err := model.MixtureEnthalpyLiquid(380, x, 0)
	require.NoError(t, err)
	hv, err := model.MixtureEnthalpyVapor(380, x, 0)
	require.NoError(t, err)

	assert.Positive(t, hl, "liquid above the reference temperature")
	assert.Greater(t, hv, hl+25000, "latent heat separates the phases")

	hl2, err := model.MixtureEnthalpyLiquid(vle.DefaultTRef, x, 0)
	require.NoError(t, err)
	assert.Zero(t, hl2, "liquid enthalpy vanishes at the reference")
}
