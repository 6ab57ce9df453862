package shortcut_test

import (
	"math"
	"testing"

	"github.com/lvchem/distill/props"
	"github.com/lvchem/distill/shortcut"
	"github.com/lvchem/distill/vle"
	"github.com/stretchr/testify/require"
)

const atm = 101325.0

// builtinEngine builds an engine at atmospheric pressure over components
// resolved from the built-in catalog.
func builtinEngine(t *testing.T, F float64, z []float64, names ...string) *shortcut.Engine {
	t.Helper()

	comps, err := props.Builtin().Resolve(names...)
	require.NoError(t, err)
	model, err := vle.NewModel(comps)
	require.NoError(t, err)
	eng, err := shortcut.New(model, F, z, atm)
	require.NoError(t, err)

	return eng
}

// btxEngine builds an engine over the benzene/toluene/o-xylene system.
func btxEngine(t *testing.T, F float64, z []float64) *shortcut.Engine {
	t.Helper()

	return builtinEngine(t, F, z, "benzene", "toluene", "o-xylene")
}

// ratioComp is a synthetic component whose vapor pressure is a fixed
// multiple of a shared baseline, so relative volatilities are exactly the
// ratio at every temperature. Handy for controlled monotonicity checks.
type ratioComp struct {
	name  string
	tb    float64
	ratio float64
}

func (c ratioComp) Name() string  { return c.name }
func (c ratioComp) Tb() float64   { return c.tb }
func (c ratioComp) Tc() float64   { return c.tb * 1.5 }
func (c ratioComp) Pc() float64   { return 4e6 }
func (c ratioComp) Omega() float64 { return 0.25 }
func (c ratioComp) MW() float64   { return 100 }

func (c ratioComp) Psat(T float64) float64 {
	return c.ratio * 1e5 * math.Pow(10, 4.0-1200.0/(T-50))
}

func (c ratioComp) Hvap(float64) float64     { return 30000 }
func (c ratioComp) CpLiquid(float64) float64 { return 150 }

// ratioEngine builds a binary engine with a constant relative volatility
// alpha between the two components.
func ratioEngine(t *testing.T, alpha float64) *shortcut.Engine {
	t.Helper()

	model, err := vle.NewModel([]props.Component{
		ratioComp{name: "light", tb: 350, ratio: alpha},
		ratioComp{name: "heavy", tb: 380, ratio: 1},
	})
	require.NoError(t, err)
	eng, err := shortcut.New(model, 100, []float64{0.5, 0.5}, atm)
	require.NoError(t, err)

	return eng
}
