package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/austencloud/tka-engine/cmd/tka-options/commands"
	"github.com/austencloud/tka-engine/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tka-options",
	Short: "Motion option resolution for kinetic notation sequences",
	Long: `tka-options — resolve valid next pictographs for a sequence.

Given the tail of an in-progress sequence, the engine determines every legal
next pictograph from the dataset, corrects starting orientations for
continuity, classifies each option into its letter type and binds the
results to render slots.

Available commands:
  resolve  - Resolve options for a sequence file
  dataset  - Inspect and watch the pictograph dataset
  version  - Show version information

Examples:
  tka-options resolve sequence.yaml              # All options for the tail
  tka-options resolve sequence.yaml -r continuous
  tka-options dataset validate                   # Load and report dataset stats
  tka-options dataset watch                      # Log dataset hot reloads`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.InitializeWithVerbosity(jsonOutput, verbosity+logger.VerbosityInfo); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "JSON log output for machine consumption")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: tka.toml found upward from cwd)")

	rootCmd.AddCommand(commands.ResolveCmd)
	rootCmd.AddCommand(commands.DatasetCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
