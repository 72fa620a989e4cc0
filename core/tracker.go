package core

import (
	"fmt"
	"time"

	"github.com/huangsam/habitctl/schema"
)

// Tracker holds the in-memory habit collection. Habits stay in insertion
// order; the index maps names to positions for O(1) lookups.
type Tracker struct {
	habits []*schema.Habit
	index  map[string]int
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{index: make(map[string]int)}
}

// NewTrackerFromHabits rebuilds a tracker from persisted habits, preserving
// their order. Duplicate names indicate a corrupt data file.
func NewTrackerFromHabits(habits []*schema.Habit) (*Tracker, error) {
	t := NewTracker()
	for _, h := range habits {
		if _, ok := t.index[h.Name]; ok {
			return nil, fmt.Errorf("duplicate habit %q in data file: %w", h.Name, schema.ErrPersistence)
		}
		t.index[h.Name] = len(t.habits)
		t.habits = append(t.habits, h)
	}
	return t, nil
}

// AddHabit creates a habit and appends it to the collection.
func (t *Tracker) AddHabit(name string, periodicity schema.Periodicity, now time.Time) error {
	if _, ok := t.index[name]; ok {
		return fmt.Errorf("%q: %w", name, schema.ErrDuplicateHabit)
	}
	h, err := NewHabit(name, periodicity, now)
	if err != nil {
		return err
	}
	t.index[name] = len(t.habits)
	t.habits = append(t.habits, h)
	return nil
}

// CompleteHabit records a completion for the named habit and returns the
// habit so callers can archive the event.
func (t *Tracker) CompleteHabit(name string, ts time.Time) (*schema.Habit, error) {
	h, err := t.lookup(name)
	if err != nil {
		return nil, err
	}
	if err := Complete(h, ts); err != nil {
		return nil, err
	}
	return h, nil
}

// DeleteHabit removes the named habit entirely and permanently.
func (t *Tracker) DeleteHabit(name string) error {
	pos, ok := t.index[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, schema.ErrHabitNotFound)
	}
	t.habits = append(t.habits[:pos], t.habits[pos+1:]...)
	delete(t.index, name)
	for i := pos; i < len(t.habits); i++ {
		t.index[t.habits[i].Name] = i
	}
	return nil
}

// GetStreak returns the current streak of the named habit.
func (t *Tracker) GetStreak(name string) (int, error) {
	h, err := t.lookup(name)
	if err != nil {
		return 0, err
	}
	return CurrentStreak(h), nil
}

// ListHabits returns report rows for all habits in insertion order.
func (t *Tracker) ListHabits() []schema.HabitSummary {
	summaries := make([]schema.HabitSummary, 0, len(t.habits))
	for _, h := range t.habits {
		summaries = append(summaries, Summarize(h))
	}
	return summaries
}

// FilterByPeriodicity returns report rows for habits tracked on the given
// cadence, in insertion order.
func (t *Tracker) FilterByPeriodicity(p schema.Periodicity) []schema.HabitSummary {
	var summaries []schema.HabitSummary
	for _, h := range t.habits {
		if h.Periodicity == p {
			summaries = append(summaries, Summarize(h))
		}
	}
	return summaries
}

// LongestStreakHabit returns the habit with the maximum current streak.
// Ties break toward the habit added first. An empty tracker is an error.
func (t *Tracker) LongestStreakHabit() (*schema.Habit, error) {
	if len(t.habits) == 0 {
		return nil, schema.ErrEmptyTracker
	}
	best := t.habits[0]
	bestStreak := CurrentStreak(best)
	for _, h := range t.habits[1:] {
		if streak := CurrentStreak(h); streak > bestStreak {
			best = h
			bestStreak = streak
		}
	}
	return best, nil
}

// Habits returns the underlying habit slice in insertion order.
func (t *Tracker) Habits() []*schema.Habit {
	return t.habits
}

// Len returns the number of tracked habits.
func (t *Tracker) Len() int {
	return len(t.habits)
}

func (t *Tracker) lookup(name string) (*schema.Habit, error) {
	pos, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, schema.ErrHabitNotFound)
	}
	return t.habits[pos], nil
}
