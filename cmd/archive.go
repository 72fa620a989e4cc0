package cmd

import (
	"fmt"

	"github.com/huangsam/habitctl/internal/archive"
	"github.com/huangsam/habitctl/internal/contract"
	"github.com/spf13/cobra"
)

// archiveCmd focused on completion archive management.
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Manage the completion archive",
	Long: `Manage the append-only archive of habit completions.

Every recorded completion is also written to the archive, and archive
entries survive habit deletion. Supported backends: SQLite (default)
or None (disabled).

Subcommands:
  status  - Show archive statistics and connection info
  clear   - Remove all archived data
  migrate - Run archive schema migrations

Examples:
  # Check archive status
  habitctl archive status

  # Start over with an empty archive
  habitctl archive clear`,
}

// archiveStatusCmd shows archive status.
var archiveStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display archive statistics and connection details",
	Long: `Show detailed information about the completion archive.

Displays:
- Backend type and connection status
- Total number of archived completions
- Last and oldest entry timestamps
- Archive database size

Examples:
  # Check archive status
  habitctl archive status`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := archive.NewStore(cfg.ArchiveBackend, cfg.ArchiveDBConnect)
		if err != nil {
			contract.LogFatal("Failed to open archive", err)
		}
		defer func() { _ = store.Close() }()

		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get archive status", err)
		}
		archive.PrintStatus(status)
	},
}

// archiveClearCmd clears the archive.
var archiveClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all archived completion data",
	Long: `Delete all archived completion data from the configured backend.

For SQLite this deletes the database file. The habit data file itself is
untouched.

Examples:
  # Clear the archive
  habitctl archive clear`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := archive.Clear(cfg.ArchiveBackend, cfg.ArchiveDBConnect); err != nil {
			contract.LogFatal("Failed to clear archive", err)
		}
		fmt.Println("Archive cleared successfully.")
	},
}

// archiveMigrateCmd runs archive schema migrations.
var archiveMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run archive schema migrations",
	Long: `Bring the archive database schema to a specific version.

By default migrates to the latest version. Use --target-version 0 to roll
back all migrations.

Examples:
  # Migrate to the latest schema
  habitctl archive migrate

  # Roll back everything
  habitctl archive migrate --target-version 0`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := archive.Migrate(cfg.ArchiveBackend, cfg.ArchiveDBConnect, input.TargetVersion); err != nil {
			contract.LogFatal("Failed to migrate archive", err)
		}
	},
}
