// Package archive keeps an append-only record of every habit completion.
// Records outlive habit deletion, so history stays available even after a
// habit is removed from the tracker.
package archive

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/huangsam/habitctl/internal/contract"
	"github.com/huangsam/habitctl/schema"
	_ "modernc.org/sqlite" // SQLite driver
)

// Store handles durable archive storage backed by database/sql.
type Store struct {
	db      *sql.DB
	backend schema.ArchiveBackend
}

var _ contract.ArchiveStore = &Store{} // Compile-time check

// NewStore initializes and returns a new archive store based on the backend
// type. For the SQLite backend the schema is brought up to date before the
// store is handed out.
func NewStore(backend schema.ArchiveBackend, connStr string) (*Store, error) {
	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetArchiveDBFilePath()
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite archive at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to open SQLite archive at %q: %w", dbPath, err)
		}
		if err := migrateUp(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to migrate archive schema: %w", err)
		}
		return &Store{db: db, backend: backend}, nil

	case schema.NoneBackend:
		// Return a no-op store for disabled archiving
		return &Store{db: nil, backend: backend}, nil

	default:
		return nil, fmt.Errorf("unsupported archive backend: %s. Must be sqlite or none", backend)
	}
}

// Record appends a completion event to the archive.
func (s *Store) Record(habitName string, periodicity schema.Periodicity, completedAt time.Time) error {
	// Skip for NoneBackend
	if s.backend == schema.NoneBackend || s.db == nil {
		return nil
	}
	_, err := s.db.Exec(
		`INSERT INTO completions (habit_name, periodicity, completed_at) VALUES (?, ?, ?)`,
		habitName, string(periodicity), completedAt.Unix(),
	)
	return err
}

// GetStatus returns status information about the archive store.
func (s *Store) GetStatus() (schema.ArchiveStatus, error) {
	status := schema.ArchiveStatus{
		Backend:   string(s.backend),
		Connected: s.db != nil,
	}
	if s.backend == schema.NoneBackend || s.db == nil {
		return status, nil
	}

	row := s.db.QueryRow(`SELECT COUNT(*) FROM completions`)
	if err := row.Scan(&status.TotalEntries); err != nil {
		return status, fmt.Errorf("failed to get total entries: %w", err)
	}

	if status.TotalEntries > 0 {
		var lastTs, oldestTs int64
		row = s.db.QueryRow(`SELECT MAX(completed_at), MIN(completed_at) FROM completions`)
		if err := row.Scan(&lastTs, &oldestTs); err != nil {
			return status, fmt.Errorf("failed to get entry time range: %w", err)
		}
		status.LastEntryTime = time.Unix(lastTs, 0)
		status.OldestEntryTime = time.Unix(oldestTs, 0)
	}

	// page_count * page_size gives the on-disk size without touching the filesystem
	row = s.db.QueryRow(`SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()`)
	if err := row.Scan(&status.TableSizeBytes); err != nil {
		status.TableSizeBytes = 0
	}

	return status, nil
}

// Close closes the underlying DB connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Clear removes all archived data for the given backend.
// For SQLite this deletes the database file.
func Clear(backend schema.ArchiveBackend, dbPath string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbPath == "" {
			dbPath = contract.GetArchiveDBFilePath()
		}
		if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove archive database %q: %w", dbPath, err)
		}
		return nil
	case schema.NoneBackend:
		return nil
	default:
		return fmt.Errorf("unsupported archive backend: %s", backend)
	}
}
