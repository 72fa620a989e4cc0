package schema

// Custom string types for type safety.
type (
	// Periodicity represents the cadence a habit is tracked on.
	Periodicity string

	// OutputMode represents the format of the output.
	OutputMode string

	// ArchiveBackend represents the storage backend for the completion archive.
	ArchiveBackend string
)

// All periodicities supported.
const (
	DailyPeriod  Periodicity = "daily"
	WeeklyPeriod Periodicity = "weekly"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All archive backends supported.
const (
	SQLiteBackend ArchiveBackend = "sqlite" // default
	NoneBackend   ArchiveBackend = "none"
)

// ValidPeriodicities lists all valid periodicities.
var ValidPeriodicities = map[Periodicity]struct{}{
	DailyPeriod:  {},
	WeeklyPeriod: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidArchiveBackends lists all valid archive backends.
var ValidArchiveBackends = map[ArchiveBackend]struct{}{
	SQLiteBackend: {},
	NoneBackend:   {},
}
