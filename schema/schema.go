// Package schema has models, enums and shared constants for all parts of habitctl.
package schema

import "time"

// Habit represents a single tracked habit. Completions are kept in
// chronological order and never contain two entries that fall into the
// same period (calendar day for daily, ISO week for weekly).
type Habit struct {
	Name        string      `json:"name"`        // Unique name within the tracker
	Periodicity Periodicity `json:"periodicity"` // daily or weekly
	CreatedAt   time.Time   `json:"created_at"`  // When the habit was added
	Completions []time.Time `json:"completions"` // Chronological completion timestamps
}

// HabitSummary is a single row of report output for a habit.
type HabitSummary struct {
	Name          string      `json:"name"`
	Periodicity   Periodicity `json:"periodicity"`
	Streak        int         `json:"streak"`
	Completions   int         `json:"completions"`
	LastCompleted time.Time   `json:"last_completed"`
}

// ArchiveStatus holds status information about the completion archive.
type ArchiveStatus struct {
	Backend         string
	Connected       bool
	TotalEntries    int
	LastEntryTime   time.Time
	OldestEntryTime time.Time
	TableSizeBytes  int64
}
