package schema

import "errors"

// Sentinel errors for all tracker operations. Callers match them with
// errors.Is after the call sites add habit or file context via %w.
var (
	// ErrValidation indicates a bad habit name or periodicity.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateHabit indicates the habit name is already tracked.
	ErrDuplicateHabit = errors.New("habit already exists")

	// ErrHabitNotFound indicates the named habit is not tracked.
	ErrHabitNotFound = errors.New("habit not found")

	// ErrDuplicateCompletion indicates the habit was already completed
	// in the same period.
	ErrDuplicateCompletion = errors.New("habit already completed this period")

	// ErrPersistence indicates the data file is corrupt or unreadable.
	ErrPersistence = errors.New("persistence failed")

	// ErrEmptyTracker indicates a streak query against a tracker with
	// no habits.
	ErrEmptyTracker = errors.New("no habits tracked")
)
