package props

// Builtin returns the built-in component catalog: the BTX aromatics used by
// the reference separation plus a handful of common solvents.
//
// Constants are textbook values; Antoine coefficients are on the bar/K basis
// and reproduce 1 atm at the listed normal boiling point to within ~0.2%.
// Good enough for shortcut-level design, not for custody transfer.
func Builtin() *Catalog {
	comps := []StaticComponent{
		{
			CompName:       "benzene",
			BoilingPoint:   353.24,
			CriticalT:      562.05,
			CriticalP:      4.895e6,
			AcentricFactor: 0.2103,
			MolarMass:      78.11,
			AntoineA:       4.01814,
			AntoineB:       1203.835,
			AntoineC:       -53.226,
			HvapBoil:       30720,
			CpA:            64.1,
			CpB:            0.20,
		},
		{
			CompName:       "toluene",
			BoilingPoint:   383.75,
			CriticalT:      591.75,
			CriticalP:      4.108e6,
			AcentricFactor: 0.2640,
			MolarMass:      92.14,
			AntoineA:       4.07827,
			AntoineB:       1343.943,
			AntoineC:       -53.773,
			HvapBoil:       33180,
			CpA:            77.0,
			CpB:            0.21,
		},
		{
			CompName:       "o-xylene",
			BoilingPoint:   417.58,
			CriticalT:      630.30,
			CriticalP:      3.732e6,
			AcentricFactor: 0.3120,
			MolarMass:      106.17,
			AntoineA:       4.12928,
			AntoineB:       1478.244,
			AntoineC:       -59.076,
			HvapBoil:       36240,
			CpA:            86.0,
			CpB:            0.24,
		},
		{
			CompName:       "ethylbenzene",
			BoilingPoint:   409.30,
			CriticalT:      617.20,
			CriticalP:      3.609e6,
			AcentricFactor: 0.3040,
			MolarMass:      106.17,
			AntoineA:       4.07488,
			AntoineB:       1419.315,
			AntoineC:       -60.539,
			HvapBoil:       35570,
			CpA:            84.0,
			CpB:            0.23,
		},
		{
			CompName:       "n-hexane",
			BoilingPoint:   341.88,
			CriticalT:      507.60,
			CriticalP:      3.025e6,
			AcentricFactor: 0.3010,
			MolarMass:      86.18,
			AntoineA:       4.00266,
			AntoineB:       1171.530,
			AntoineC:       -48.784,
			HvapBoil:       28850,
			CpA:            120.0,
			CpB:            0.21,
		},
		{
			CompName:       "n-heptane",
			BoilingPoint:   371.57,
			CriticalT:      540.20,
			CriticalP:      2.740e6,
			AcentricFactor: 0.3500,
			MolarMass:      100.20,
			AntoineA:       4.02832,
			AntoineB:       1268.636,
			AntoineC:       -56.199,
			HvapBoil:       31770,
			CpA:            140.0,
			CpB:            0.23,
		},
		{
			CompName:       "cyclohexane",
			BoilingPoint:   353.87,
			CriticalT:      553.60,
			CriticalP:      4.073e6,
			AcentricFactor: 0.2120,
			MolarMass:      84.16,
			AntoineA:       3.96988,
			AntoineB:       1203.526,
			AntoineC:       -50.287,
			HvapBoil:       29970,
			CpA:            90.0,
			CpB:            0.20,
		},
	}

	byName := make(map[string]StaticComponent, len(comps))
	for _, c := range comps {
		byName[c.CompName] = c
	}

	return &Catalog{byName: byName}
}
