package commands

import (
	"fmt"
	"os"

	"github.com/lvchem/distill/props"
	"github.com/lvchem/distill/shortcut"
	"github.com/lvchem/distill/vle"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// caseFile is the YAML description of one design case.
//
//	components: [benzene, toluene, o-xylene]
//	flow: 100
//	pressure: 101325
//	composition: [0.333, 0.333, 0.334]
//	options:
//	  recovery_lk: 0.95
//	  recovery_hk: 0.95
//	  reflux_factor: 1.3
//	  q: 1.0
//	  efficiency: 0.70
//
// The options block is optional; absent fields keep the design defaults.
type caseFile struct {
	Components  []string     `yaml:"components"`
	Flow        float64      `yaml:"flow"`
	Pressure    float64      `yaml:"pressure"`
	Composition []float64    `yaml:"composition"`
	Options     *caseOptions `yaml:"options"`
}

type caseOptions struct {
	RecoveryLK   *float64 `yaml:"recovery_lk"`
	RecoveryHK   *float64 `yaml:"recovery_hk"`
	RefluxFactor *float64 `yaml:"reflux_factor"`
	Q            *float64 `yaml:"q"`
	Efficiency   *float64 `yaml:"efficiency"`
}

// feedFlags is the flag-side description of the same case; a YAML file,
// when given, takes precedence for feed fields while flags still override
// the option fields they explicitly set.
type feedFlags struct {
	file        string
	components  []string
	flow        float64
	pressure    float64
	composition []float64
}

// register wires the shared feed flags into a command.
func (ff *feedFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&ff.file, "file", "", "YAML case file describing the feed")
	fs.StringSliceVar(&ff.components, "components", nil, "component names from the catalog")
	fs.Float64Var(&ff.flow, "flow", 100, "feed molar flow (mol/h)")
	fs.Float64Var(&ff.pressure, "pressure", 101325, "column pressure (Pa)")
	fs.Float64SliceVar(&ff.composition, "composition", nil, "feed mole fractions, one per component")
}

// loadCatalog returns the catalog selected by the global --catalog flag.
func loadCatalog() (*props.Catalog, error) {
	if catalogPath == "" {
		return props.Builtin(), nil
	}

	cat, err := props.LoadCatalogFile(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	return cat, nil
}

// buildEngine assembles the design engine from the case description and
// returns it together with the effective options.
func (ff *feedFlags) buildEngine(opts shortcut.Options) (*shortcut.Engine, shortcut.Options, error) {
	components := ff.components
	flow := ff.flow
	pressure := ff.pressure
	composition := ff.composition

	if ff.file != "" {
		raw, err := os.ReadFile(ff.file)
		if err != nil {
			return nil, opts, fmt.Errorf("reading case file: %w", err)
		}

		var cf caseFile
		if err := yaml.Unmarshal(raw, &cf); err != nil {
			return nil, opts, fmt.Errorf("parsing case file: %w", err)
		}

		components = cf.Components
		composition = cf.Composition
		if cf.Flow != 0 {
			flow = cf.Flow
		}
		if cf.Pressure != 0 {
			pressure = cf.Pressure
		}
		if o := cf.Options; o != nil {
			if o.RecoveryLK != nil {
				opts.RecoveryLKD = *o.RecoveryLK
			}
			if o.RecoveryHK != nil {
				opts.RecoveryHKB = *o.RecoveryHK
			}
			if o.RefluxFactor != nil {
				opts.RFactor = *o.RefluxFactor
			}
			if o.Q != nil {
				opts.Q = *o.Q
			}
			if o.Efficiency != nil {
				opts.Efficiency = *o.Efficiency
			}
		}
	}

	if len(components) == 0 {
		return nil, opts, fmt.Errorf("no components given: use --components or --file")
	}

	cat, err := loadCatalog()
	if err != nil {
		return nil, opts, err
	}
	comps, err := cat.Resolve(components...)
	if err != nil {
		return nil, opts, err
	}
	model, err := vle.NewModel(comps)
	if err != nil {
		return nil, opts, err
	}
	eng, err := shortcut.New(model, flow, composition, pressure)
	if err != nil {
		return nil, opts, err
	}

	return eng, opts, nil
}
