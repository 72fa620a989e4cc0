// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/huangsam/habitctl/schema"
)

// ArchiveStore defines the interface for the append-only completion archive.
// This allows the archive layer to be mocked for testing and disabled with
// a no-op backend.
type ArchiveStore interface {
	// Record appends a completion event to the archive.
	Record(habitName string, periodicity schema.Periodicity, completedAt time.Time) error

	// GetStatus returns status information about the archive store.
	GetStatus() (schema.ArchiveStatus, error)

	// Close closes the underlying connection.
	Close() error
}
