package cmd

import (
	"time"

	"github.com/huangsam/habitctl/core"
	"github.com/huangsam/habitctl/internal/archive"
	"github.com/huangsam/habitctl/internal/contract"
	"github.com/huangsam/habitctl/schema"
	"github.com/spf13/cobra"
)

// addCmd creates a new habit.
var addCmd = &cobra.Command{
	Use:   "add <name> <daily|weekly>",
	Short: "Add a new habit to the tracker.",
	Long: `Create a habit with the given name and periodicity.

The name must be unique within the tracker. Daily habits expect one
completion per calendar day, weekly habits one completion per ISO week.

Examples:
  # Track a daily habit
  habitctl add Exercise daily

  # Track a weekly habit
  habitctl add "Call Family" weekly`,
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteAdd(cfg, args[0], schema.Periodicity(args[1])); err != nil {
			contract.LogFatal("Cannot add habit", err)
		}
	},
}

// completeCmd records a completion for a habit.
var completeCmd = &cobra.Command{
	Use:   "complete <name>",
	Short: "Record a completion for a habit.",
	Long: `Mark the named habit as completed.

Completing the same habit twice in one period (calendar day for daily
habits, ISO week for weekly habits) is rejected, and a backfilled
timestamp must not predate the most recent completion. The completion
is also appended to the archive when one is configured.

Examples:
  # Complete a habit now
  habitctl complete Exercise

  # Backfill a completion
  habitctl complete Exercise --at 2026-08-20`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, args []string) {
		ts := time.Now()
		if input.At != "" {
			var err error
			if ts, err = contract.ParseTimestamp(input.At); err != nil {
				contract.LogFatal("Cannot parse --at", err)
			}
		}

		// The archive is best-effort: a broken archive must not block the
		// completion itself.
		var store contract.ArchiveStore
		if s, err := archive.NewStore(cfg.ArchiveBackend, cfg.ArchiveDBConnect); err != nil {
			contract.LogWarn("Could not open completion archive", err)
		} else {
			store = s
			defer func() { _ = s.Close() }()
		}

		if err := core.ExecuteComplete(cfg, store, args[0], ts); err != nil {
			contract.LogFatal("Cannot complete habit", err)
		}
	},
}

// deleteCmd removes a habit entirely.
var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a habit and its completion history.",
	Long: `Remove the named habit from the tracker entirely and permanently.

Archived completions are kept; only the tracked habit and its in-file
history go away.

Examples:
  # Stop tracking a habit
  habitctl delete Exercise`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteDelete(cfg, args[0]); err != nil {
			contract.LogFatal("Cannot delete habit", err)
		}
	},
}
