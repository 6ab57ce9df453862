package vle

// DefaultTRef is the reference temperature (K) for enthalpy differences.
const DefaultTRef = 298.15

// MixtureEnthalpyLiquid computes the ideal-mixture liquid molar enthalpy at
// T relative to tRef (J/mol): Σ x_i·Cp_i·(T−tRef). tRef <= 0 selects
// DefaultTRef. Ideal mixing: no excess enthalpy term.
func (m *Model) MixtureEnthalpyLiquid(T float64, x []float64, tRef float64) (float64, error) {
	if len(x) != len(m.comps) {
		return 0, ErrDimensionMismatch
	}
	if tRef <= 0 {
		tRef = DefaultTRef
	}

	var h float64
	for i, c := range m.comps {
		h += x[i] * c.CpLiquid(T) * (T - tRef)
	}

	return h, nil
}

// MixtureEnthalpyVapor computes the ideal-mixture vapor molar enthalpy at T
// relative to tRef (J/mol): the liquid enthalpy plus Σ y_i·Hvap_i(T).
func (m *Model) MixtureEnthalpyVapor(T float64, y []float64, tRef float64) (float64, error) {
	h, err := m.MixtureEnthalpyLiquid(T, y, tRef)
	if err != nil {
		return 0, err
	}

	for i, c := range m.comps {
		h += y[i] * c.Hvap(T)
	}

	return h, nil
}
