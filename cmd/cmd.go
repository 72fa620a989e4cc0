// Package cmd defines the command-line interface for habitctl.
package cmd

import (
	"github.com/huangsam/habitctl/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(longestCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the archive subcommands to the parent archive command
	archiveCmd.AddCommand(archiveStatusCmd)
	archiveCmd.AddCommand(archiveClearCmd)
	archiveCmd.AddCommand(archiveMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("file", "f", contract.DefaultDataFile, "Path to the habit data file")
	rootCmd.PersistentFlags().String("output", "text", "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("archive-backend", "sqlite", "Completion archive backend: sqlite or none")
	rootCmd.PersistentFlags().String("archive-db-connect", "", "SQLite file path for the completion archive")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of completeCmd to Viper
	completeCmd.Flags().String("at", "", "Completion timestamp (RFC3339 or YYYY-MM-DD, default now)")
	if err := viper.BindPFlags(completeCmd.Flags()); err != nil {
		contract.LogFatal("Error binding complete flags", err)
	}

	// Bind all flags of listCmd to Viper
	listCmd.Flags().StringP("periodicity", "p", "", "Only show habits with this periodicity: daily or weekly")
	if err := viper.BindPFlags(listCmd.Flags()); err != nil {
		contract.LogFatal("Error binding list flags", err)
	}

	// Bind all flags of seedCmd to Viper
	seedCmd.Flags().Int("weeks", contract.DefaultSeedWeeks, "Weeks of generated history")
	seedCmd.Flags().Bool("force", false, "Overwrite an existing data file")
	if err := viper.BindPFlags(seedCmd.Flags()); err != nil {
		contract.LogFatal("Error binding seed flags", err)
	}

	// Bind all flags of archiveMigrateCmd to Viper
	archiveMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(archiveMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding archive migrate flags", err)
	}
}
