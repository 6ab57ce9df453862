package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lvchem/distill/shortcut"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newDesignCommand() *cobra.Command {
	var (
		feed         feedFlags
		recoveryLK   float64
		recoveryHK   float64
		refluxFactor float64
		quality      float64
		efficiency   float64
		withProfiles bool
	)

	cmd := &cobra.Command{
		Use:   "design",
		Short: "Run a complete shortcut column design",
		Long: `Run the full shortcut design sequence for one feed: material balance,
Fenske, Underwood, Gilliland, real plates, Kirkbride and internal flows.`,
		Example: `  # Equimolar BTX feed with the default design options
  distill design --components benzene,toluene,o-xylene \
      --composition 0.333,0.333,0.334

  # From a YAML case file, as JSON
  distill design --file btx.yaml --json

  # With stage profile estimates
  distill design --file btx.yaml --profiles`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := shortcut.Options{
				RecoveryLKD: recoveryLK,
				RecoveryHKB: recoveryHK,
				RFactor:     refluxFactor,
				Q:           quality,
				Efficiency:  efficiency,
			}
			eng, opts, err := feed.buildEngine(opts)
			if err != nil {
				return err
			}

			res, err := eng.CompleteShortcutDesign(opts)
			if err != nil {
				return err
			}
			if res.Degraded {
				log.Warn().Msg("Numerical fallback taken; treat the result as approximate")
			}

			var profiles []shortcut.StageProfile
			if withProfiles {
				profiles = eng.Profiles(res)
			}

			if jsonOutput {
				out := struct {
					shortcut.Result
					Profiles []shortcut.StageProfile `json:"profiles,omitempty"`
				}{res, profiles}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")

				return enc.Encode(out)
			}

			printResult(eng, res)
			if withProfiles {
				printProfiles(eng, profiles)
			}

			return nil
		},
	}

	feed.register(cmd)
	cmd.Flags().Float64Var(&recoveryLK, "recovery-lk", 0.95, "light-key recovery in the distillate")
	cmd.Flags().Float64Var(&recoveryHK, "recovery-hk", 0.95, "heavy-key recovery in the bottoms")
	cmd.Flags().Float64Var(&refluxFactor, "reflux-factor", 1.3, "operating reflux multiplier R/Rmin")
	cmd.Flags().Float64Var(&quality, "q", 1.0, "feed quality (liquid fraction)")
	cmd.Flags().Float64Var(&efficiency, "efficiency", 0.70, "overall plate efficiency")
	cmd.Flags().BoolVar(&withProfiles, "profiles", false, "print estimated stage profiles")

	return cmd
}

func printResult(eng *shortcut.Engine, res shortcut.Result) {
	names := componentNames(eng)

	fmt.Printf("Keys: light = %s, heavy = %s\n\n", names[res.LightKey], names[res.HeavyKey])

	fmt.Println("Material balance (mol/h):")
	fmt.Printf("  %-14s %10s %10s %10s\n", "component", "feed", "xD", "xB")
	z := eng.Composition()
	for i, name := range names {
		fmt.Printf("  %-14s %10.3f %10.4f %10.4f\n", name, eng.Feed()*z[i], res.XD[i], res.XB[i])
	}
	fmt.Printf("  D = %.3f   B = %.3f\n\n", res.D, res.B)

	fmt.Println("Column:")
	fmt.Printf("  Nmin   = %8.3f   (alpha_avg = %.3f)\n", res.Nmin, res.AlphaAvg)
	fmt.Printf("  Rmin   = %8.3f   (theta = %.3f)\n", res.Rmin, res.Theta)
	fmt.Printf("  R      = %8.3f\n", res.R)
	fmt.Printf("  N      = %8.3f theoretical, %d real\n", res.Ntheoretical, res.Nreal)
	fmt.Printf("  Feed stage %d   (NR = %d, NS = %d)\n\n", res.FeedStage, res.NR, res.NS)

	fmt.Println("Internal flows (mol/h):")
	fmt.Printf("  L  = %9.3f   V  = %9.3f\n", res.L, res.V)
	fmt.Printf("  L' = %9.3f   V' = %9.3f\n", res.LPrime, res.VPrime)
}

func printProfiles(eng *shortcut.Engine, stages []shortcut.StageProfile) {
	names := componentNames(eng)

	fmt.Println("\nEstimated stage profiles (top to bottom):")
	fmt.Printf("  %5s %9s", "stage", "T (K)")
	for _, name := range names {
		fmt.Printf(" %10s", "x "+name)
	}
	fmt.Println()

	for _, s := range stages {
		marker := " "
		if s.Feed {
			marker = "*"
		}
		fmt.Printf("  %4d%s %9.2f", s.Stage, marker, s.T)
		for _, xi := range s.X {
			fmt.Printf(" %10.4f", xi)
		}
		if !s.Converged {
			fmt.Print("   (not converged)")
		}
		fmt.Println()
	}
	fmt.Println("  * feed stage")
}

func componentNames(eng *shortcut.Engine) []string {
	comps := eng.Model().Components()
	names := make([]string, len(comps))
	for i, c := range comps {
		names[i] = c.Name()
	}

	return names
}
