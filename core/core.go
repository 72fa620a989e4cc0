package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/huangsam/habitctl/internal/contract"
	"github.com/huangsam/habitctl/internal/habitfile"
	"github.com/huangsam/habitctl/internal/outwriter"
	"github.com/huangsam/habitctl/schema"
)

// ExecuteAdd creates a new habit and persists the collection.
// It serves as the main entry point for the 'add' command.
func ExecuteAdd(cfg *contract.Config, name string, periodicity schema.Periodicity) error {
	tracker, err := loadTracker(cfg)
	if err != nil {
		return err
	}
	if err := tracker.AddHabit(name, periodicity, time.Now()); err != nil {
		return err
	}
	if err := habitfile.Save(cfg.DataFile, tracker.Habits()); err != nil {
		return err
	}
	fmt.Printf("Added %s habit %q\n", periodicity, name)
	return nil
}

// ExecuteComplete records a completion for the named habit and persists the
// collection. The completion is also appended to the archive when one is
// configured; archive failures are warnings, never command failures.
func ExecuteComplete(cfg *contract.Config, store contract.ArchiveStore, name string, ts time.Time) error {
	tracker, err := loadTracker(cfg)
	if err != nil {
		return err
	}
	h, err := tracker.CompleteHabit(name, ts)
	if err != nil {
		return err
	}
	if err := habitfile.Save(cfg.DataFile, tracker.Habits()); err != nil {
		return err
	}
	if store != nil {
		if err := store.Record(h.Name, h.Periodicity, ts); err != nil {
			contract.LogWarn("Could not archive completion", err)
		}
	}
	fmt.Printf("Completed %q, streak is now %d\n", h.Name, CurrentStreak(h))
	return nil
}

// ExecuteDelete removes the named habit and persists the collection.
func ExecuteDelete(cfg *contract.Config, name string) error {
	tracker, err := loadTracker(cfg)
	if err != nil {
		return err
	}
	if err := tracker.DeleteHabit(name); err != nil {
		return err
	}
	if err := habitfile.Save(cfg.DataFile, tracker.Habits()); err != nil {
		return err
	}
	fmt.Printf("Deleted habit %q\n", name)
	return nil
}

// ExecuteList prints the habit report, optionally filtered by periodicity.
// It serves as the main entry point for the 'list' command.
func ExecuteList(cfg *contract.Config, periodicityFilter string) error {
	tracker, err := loadTracker(cfg)
	if err != nil {
		return err
	}

	var summaries []schema.HabitSummary
	if periodicityFilter == "" {
		summaries = tracker.ListHabits()
	} else {
		p := schema.Periodicity(periodicityFilter)
		if _, ok := schema.ValidPeriodicities[p]; !ok {
			return fmt.Errorf("periodicity %q must be daily or weekly: %w", periodicityFilter, schema.ErrValidation)
		}
		summaries = tracker.FilterByPeriodicity(p)
	}
	return outwriter.WriteHabitList(summaries, cfg)
}

// ExecuteStreak prints the current streak of the named habit.
func ExecuteStreak(cfg *contract.Config, name string) error {
	tracker, err := loadTracker(cfg)
	if err != nil {
		return err
	}
	h, err := tracker.lookup(name)
	if err != nil {
		return err
	}
	return outwriter.WriteStreak(Summarize(h), cfg)
}

// ExecuteLongest prints the habit with the longest current streak.
func ExecuteLongest(cfg *contract.Config) error {
	tracker, err := loadTracker(cfg)
	if err != nil {
		return err
	}
	h, err := tracker.LongestStreakHabit()
	if err != nil {
		return err
	}
	return outwriter.WriteLongest(Summarize(h), cfg)
}

// ExecuteSeed populates the data file with example habits and generated
// history. Refuses to clobber an existing data file unless forced.
func ExecuteSeed(cfg *contract.Config, weeks int, force bool) error {
	if weeks <= 0 {
		return fmt.Errorf("weeks must be positive, got %d: %w", weeks, schema.ErrValidation)
	}
	if _, err := os.Stat(cfg.DataFile); err == nil && !force {
		return fmt.Errorf("data file %s already exists, use --force to overwrite: %w", cfg.DataFile, schema.ErrValidation)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot stat %s: %w", cfg.DataFile, err)
	}

	tracker, err := SeedTracker(weeks, time.Now())
	if err != nil {
		return err
	}
	if err := habitfile.Save(cfg.DataFile, tracker.Habits()); err != nil {
		return err
	}
	fmt.Printf("Seeded %d habits with %d weeks of history into %s\n", tracker.Len(), weeks, cfg.DataFile)
	return nil
}

// loadTracker reads the persisted habit collection and rebuilds the tracker.
func loadTracker(cfg *contract.Config) (*Tracker, error) {
	habits, err := habitfile.Load(cfg.DataFile)
	if err != nil {
		return nil, err
	}
	return NewTrackerFromHabits(habits)
}
