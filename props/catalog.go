package props

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Catalog maps component names to their property records. Catalogs are
// immutable after construction; Resolve is safe for concurrent use.
type Catalog struct {
	byName map[string]StaticComponent
}

// Resolve looks up every requested name, in order, and returns the matching
// components. A single missing name fails the whole call with
// ErrUnknownComponent so that the failure surfaces before any engine is
// constructed.
func (c *Catalog) Resolve(names ...string) ([]Component, error) {
	out := make([]Component, 0, len(names))
	for _, name := range names {
		sc, ok := c.byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
		}
		out = append(out, sc)
	}

	return out, nil
}

// Names returns the catalog's component names in lexical order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Len returns the number of components in the catalog.
func (c *Catalog) Len() int { return len(c.byName) }

// catalogDoc is the YAML document shape for user catalogs:
//
//	components:
//	  - name: benzene
//	    tb: 353.24        # K
//	    tc: 562.05        # K
//	    pc: 4.895e6       # Pa
//	    omega: 0.2103     # optional; estimated from Tb/Tc/Pc when omitted
//	    mw: 78.11         # g/mol
//	    antoine: {a: 4.01814, b: 1203.835, c: -53.226}   # bar, K basis
//	    hvap_tb: 30720    # J/mol at Tb
//	    cp_liquid: {a: 64.1, b: 0.20}                    # J/(mol·K), linear in T
type catalogDoc struct {
	Components []catalogEntry `yaml:"components"`
}

type catalogEntry struct {
	Name    string   `yaml:"name"`
	Tb      float64  `yaml:"tb"`
	Tc      float64  `yaml:"tc"`
	Pc      float64  `yaml:"pc"`
	Omega   *float64 `yaml:"omega"`
	MW      float64  `yaml:"mw"`
	Antoine struct {
		A float64 `yaml:"a"`
		B float64 `yaml:"b"`
		C float64 `yaml:"c"`
	} `yaml:"antoine"`
	HvapTb   float64 `yaml:"hvap_tb"`
	CpLiquid struct {
		A float64 `yaml:"a"`
		B float64 `yaml:"b"`
	} `yaml:"cp_liquid"`
}

// LoadCatalog parses a YAML component catalog from r. Entries with
// non-positive constants are rejected with ErrBadComponent; an omitted
// acentric factor is estimated via EstimateOmega.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var doc catalogDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("props: decode catalog: %w", err)
	}
	if len(doc.Components) == 0 {
		return nil, ErrEmptyCatalog
	}

	byName := make(map[string]StaticComponent, len(doc.Components))
	for _, e := range doc.Components {
		sc := StaticComponent{
			CompName:     e.Name,
			BoilingPoint: e.Tb,
			CriticalT:    e.Tc,
			CriticalP:    e.Pc,
			MolarMass:    e.MW,
			AntoineA:     e.Antoine.A,
			AntoineB:     e.Antoine.B,
			AntoineC:     e.Antoine.C,
			HvapBoil:     e.HvapTb,
			CpA:          e.CpLiquid.A,
			CpB:          e.CpLiquid.B,
		}
		if err := sc.validate(); err != nil {
			return nil, fmt.Errorf("%w: %q", err, e.Name)
		}
		if e.Omega != nil {
			sc.AcentricFactor = *e.Omega
		} else {
			sc.AcentricFactor = EstimateOmega(e.Tb, e.Tc, e.Pc)
		}
		byName[e.Name] = sc
	}

	return &Catalog{byName: byName}, nil
}

// LoadCatalogFile reads a YAML component catalog from path.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("props: open catalog: %w", err)
	}
	defer f.Close()

	return LoadCatalog(f)
}
