package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/huangsam/habitctl/schema"
)

// Default values for configuration.
const (
	DefaultDataFile  = "habits.json"
	DefaultSeedWeeks = 4
)

// Config holds the runtime configuration for tracker operations.
// This struct remains the "final, validated" config.
type Config struct {
	DataFile   string
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	ArchiveBackend   schema.ArchiveBackend
	ArchiveDBConnect string // SQLite file path override
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	File             string `mapstructure:"file"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Color            string `mapstructure:"color"`
	Width            int    `mapstructure:"width"`
	ArchiveBackend   string `mapstructure:"archive-backend"`
	ArchiveDBConnect string `mapstructure:"archive-db-connect"`

	// --- Fields from listCmd.Flags() ---
	Periodicity string `mapstructure:"periodicity"`

	// --- Fields from completeCmd.Flags() ---
	At string `mapstructure:"at"`

	// --- Fields from seedCmd.Flags() ---
	Weeks int  `mapstructure:"weeks"`
	Force bool `mapstructure:"force"`

	// --- Fields from archiveMigrateCmd.Flags() ---
	TargetVersion int `mapstructure:"target-version"`
}

// ProcessAndValidate turns the raw input into a validated Config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.DataFile = input.File
	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFile
	}

	output := schema.OutputMode(input.Output)
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode: %s. Must be text, csv, or json", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	if input.Width < 0 {
		return fmt.Errorf("invalid width: %d. Must be zero or positive", input.Width)
	}
	cfg.Width = input.Width

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors

	backend := schema.ArchiveBackend(input.ArchiveBackend)
	if _, ok := schema.ValidArchiveBackends[backend]; !ok {
		return fmt.Errorf("invalid archive backend: %s. Must be sqlite or none", input.ArchiveBackend)
	}
	cfg.ArchiveBackend = backend
	cfg.ArchiveDBConnect = input.ArchiveDBConnect

	return nil
}

// GetArchiveDBFilePath returns the path to the SQLite DB file for the
// completion archive.
func GetArchiveDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".habitctl_archive.db"
	}
	return filepath.Join(homeDir, ".habitctl_archive.db")
}
