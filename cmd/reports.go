package cmd

import (
	"github.com/huangsam/habitctl/core"
	"github.com/huangsam/habitctl/internal/contract"
	"github.com/spf13/cobra"
)

// listCmd shows the habit report.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all habits with their current streaks.",
	Long: `List tracked habits in the order they were added.

Each row shows the habit's periodicity, current streak, total completions,
last completion date, and a streak label.

Examples:
  # Show everything
  habitctl list

  # Only weekly habits
  habitctl list --periodicity weekly

  # Export to CSV for tracking
  habitctl list --output csv --output-file habits.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteList(cfg, input.Periodicity); err != nil {
			contract.LogFatal("Cannot list habits", err)
		}
	},
}

// streakCmd shows the current streak for one habit.
var streakCmd = &cobra.Command{
	Use:   "streak <name>",
	Short: "Show the current streak for a habit.",
	Long: `Print the number of consecutive periods, ending at the most recent
completion, in which the named habit was completed without a gap.

Examples:
  # Check a streak
  habitctl streak Exercise`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteStreak(cfg, args[0]); err != nil {
			contract.LogFatal("Cannot get streak", err)
		}
	},
}

// longestCmd shows the habit with the longest current streak.
var longestCmd = &cobra.Command{
	Use:   "longest",
	Short: "Show the habit with the longest current streak.",
	Long: `Find the habit with the maximum current streak across the tracker.

Ties break toward the habit that was added first. An empty tracker is
reported as an error rather than guessing.

Examples:
  # Find the best habit
  habitctl longest`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteLongest(cfg); err != nil {
			contract.LogFatal("Cannot find longest streak", err)
		}
	},
}
