package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newComponentsCommand() *cobra.Command {
	var (
		temperature float64
		pressure    float64
	)

	cmd := &cobra.Command{
		Use:   "components",
		Short: "List catalog components and their properties",
		Long: `List every component in the active catalog with its constants and its
temperature-dependent properties evaluated at the given conditions.`,
		Example: `  # Built-in catalog at 25 °C and 1 atm
  distill components

  # A user catalog at process conditions
  distill components --catalog custom.yaml --temperature 380`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			comps, err := cat.Resolve(cat.Names()...)
			if err != nil {
				return err
			}

			type row struct {
				Name  string  `json:"name"`
				Tb    float64 `json:"tb"`
				Tc    float64 `json:"tc"`
				Pc    float64 `json:"pc"`
				Omega float64 `json:"omega"`
				MW    float64 `json:"mw"`
				Psat  float64 `json:"psat"`
				K     float64 `json:"k"`
				Hvap  float64 `json:"hvap"`
				Cp    float64 `json:"cp_liquid"`
			}

			rows := make([]row, 0, len(comps))
			for _, c := range comps {
				psat := c.Psat(temperature)
				rows = append(rows, row{
					Name:  c.Name(),
					Tb:    c.Tb(),
					Tc:    c.Tc(),
					Pc:    c.Pc(),
					Omega: c.Omega(),
					MW:    c.MW(),
					Psat:  psat,
					K:     psat / pressure,
					Hvap:  c.Hvap(temperature),
					Cp:    c.CpLiquid(temperature),
				})
			}

			if jsonOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")

				return enc.Encode(rows)
			}

			fmt.Printf("Properties at T = %.2f K, P = %.0f Pa:\n\n", temperature, pressure)
			fmt.Printf("%-14s %8s %8s %12s %7s %7s %12s %8s %10s %8s\n",
				"component", "Tb (K)", "Tc (K)", "Pc (Pa)", "omega", "MW",
				"Psat (Pa)", "K", "Hvap", "Cp,liq")
			for _, r := range rows {
				fmt.Printf("%-14s %8.2f %8.2f %12.3e %7.4f %7.2f %12.4e %8.4f %10.1f %8.1f\n",
					r.Name, r.Tb, r.Tc, r.Pc, r.Omega, r.MW, r.Psat, r.K, r.Hvap, r.Cp)
			}

			return nil
		},
	}

	cmd.Flags().Float64Var(&temperature, "temperature", 298.15, "evaluation temperature (K)")
	cmd.Flags().Float64Var(&pressure, "pressure", 101325, "evaluation pressure (Pa)")

	return cmd
}
