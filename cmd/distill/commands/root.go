package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	catalogPath string
	jsonOutput  bool
)

// Execute runs the root command.
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)

	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "distill",
		Short: "Shortcut distillation column design",
		Long: `distill sizes multicomponent distillation columns with the classical
shortcut sequence: overall material balance from key recoveries, Fenske
minimum plates, Underwood minimum reflux, Gilliland plate count and the
Kirkbride feed-stage split.

Feeds are described by flags or a YAML case file; component properties
come from the built-in catalog or a user catalog (--catalog).`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	}

	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "YAML component catalog (defaults to the built-in one)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	rootCmd.AddCommand(newDesignCommand())
	rootCmd.AddCommand(newStudyCommand())
	rootCmd.AddCommand(newComponentsCommand())

	return rootCmd
}
