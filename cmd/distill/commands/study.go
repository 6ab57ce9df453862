package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lvchem/distill/shortcut"
	"github.com/spf13/cobra"
)

func newStudyCommand() *cobra.Command {
	var (
		feed       feedFlags
		recoveryLK float64
		recoveryHK float64
		quality    float64
		efficiency float64
		factors    []float64
	)

	cmd := &cobra.Command{
		Use:   "study",
		Short: "Sweep the reflux factor for one feed",
		Long: `Run a reflux-factor parametric study: the material balance, Fenske and
Underwood stages are shared, then the plate count and feed stage are
reported for each requested R/Rmin factor.`,
		Example: `  distill study --file btx.yaml --factors 1.1,1.2,1.3,1.5,2.0

  distill study --components benzene,toluene,o-xylene \
      --composition 0.333,0.333,0.334 --factors 1.1,1.5,2 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := shortcut.Options{
				RecoveryLKD: recoveryLK,
				RecoveryHKB: recoveryHK,
				RFactor:     1.3, // unused by the study beyond validation
				Q:           quality,
				Efficiency:  efficiency,
			}
			eng, opts, err := feed.buildEngine(opts)
			if err != nil {
				return err
			}

			points, err := eng.RefluxStudy(opts, factors)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")

				return enc.Encode(points)
			}

			fmt.Printf("%8s %8s %8s %6s %6s\n", "R/Rmin", "R", "Ntheo", "Nreal", "feed")
			for _, p := range points {
				fmt.Printf("%8.2f %8.3f %8.3f %6d %6d\n",
					p.RFactor, p.R, p.Ntheoretical, p.Nreal, p.FeedStage)
			}

			return nil
		},
	}

	feed.register(cmd)
	cmd.Flags().Float64Var(&recoveryLK, "recovery-lk", 0.95, "light-key recovery in the distillate")
	cmd.Flags().Float64Var(&recoveryHK, "recovery-hk", 0.95, "heavy-key recovery in the bottoms")
	cmd.Flags().Float64Var(&quality, "q", 1.0, "feed quality (liquid fraction)")
	cmd.Flags().Float64Var(&efficiency, "efficiency", 0.70, "overall plate efficiency")
	cmd.Flags().Float64SliceVar(&factors, "factors", []float64{1.1, 1.2, 1.3, 1.5, 2.0}, "R/Rmin factors to sweep")

	return cmd
}
