package cmd

import (
	"github.com/huangsam/habitctl/core"
	"github.com/huangsam/habitctl/internal/contract"
	"github.com/spf13/cobra"
)

// seedCmd populates the data file with example habits.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the data file with example habits and history.",
	Long: `Create five example habits (three daily, two weekly) with several
weeks of generated completion history, so reports have something to show
right away.

Refuses to overwrite an existing data file unless --force is given.

Examples:
  # Seed four weeks of history
  habitctl seed

  # Seed eight weeks and replace the current data file
  habitctl seed --weeks 8 --force`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSeed(cfg, input.Weeks, input.Force); err != nil {
			contract.LogFatal("Cannot seed habits", err)
		}
	},
}
