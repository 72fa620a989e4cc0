// Package core has core logic for habits, streaks and tracker operations.
package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/habitctl/schema"
)

// NewHabit creates a habit with an empty completion history.
// The name must be non-empty and the periodicity must be daily or weekly.
func NewHabit(name string, periodicity schema.Periodicity, now time.Time) (*schema.Habit, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("habit name must not be empty: %w", schema.ErrValidation)
	}
	if _, ok := schema.ValidPeriodicities[periodicity]; !ok {
		return nil, fmt.Errorf("periodicity %q must be daily or weekly: %w", periodicity, schema.ErrValidation)
	}
	return &schema.Habit{
		Name:        name,
		Periodicity: periodicity,
		CreatedAt:   now,
	}, nil
}

// Complete records a completion for the habit at ts. The history is kept in
// chronological period order: a timestamp in the same period as the most
// recent completion is a duplicate, and one in an earlier period is rejected
// so backfilled timestamps cannot reorder or double-book the history.
func Complete(h *schema.Habit, ts time.Time) error {
	if n := len(h.Completions); n > 0 {
		last := PeriodStart(h.Periodicity, h.Completions[n-1])
		period := PeriodStart(h.Periodicity, ts)
		if period.Equal(last) {
			return fmt.Errorf("%q on %s: %w", h.Name, last.Format(time.DateOnly), schema.ErrDuplicateCompletion)
		}
		if period.Before(last) {
			return fmt.Errorf("%q at %s predates the latest completion on %s: %w",
				h.Name, ts.Format(time.DateOnly), last.Format(time.DateOnly), schema.ErrValidation)
		}
	}
	h.Completions = append(h.Completions, ts)
	return nil
}

// CurrentStreak walks the completion history from the most recent entry
// backward and counts consecutive periods with no gap. A habit with no
// completions has a streak of 0; a single completion is a streak of 1
// no matter how long ago it happened.
func CurrentStreak(h *schema.Habit) int {
	n := len(h.Completions)
	if n == 0 {
		return 0
	}

	streak := 1
	current := PeriodStart(h.Periodicity, h.Completions[n-1])
	for i := n - 2; i >= 0; i-- {
		previous := PeriodStart(h.Periodicity, h.Completions[i])
		if previous.Equal(current) {
			// Same period twice should never happen given the completion
			// invariant, but tolerate it rather than miscounting.
			continue
		}
		if !previous.Equal(prevPeriodStart(h.Periodicity, current)) {
			break
		}
		streak++
		current = previous
	}
	return streak
}

// Summarize produces the report row for a habit.
func Summarize(h *schema.Habit) schema.HabitSummary {
	s := schema.HabitSummary{
		Name:        h.Name,
		Periodicity: h.Periodicity,
		Streak:      CurrentStreak(h),
		Completions: len(h.Completions),
	}
	if n := len(h.Completions); n > 0 {
		s.LastCompleted = h.Completions[n-1]
	}
	return s
}

// PeriodStart returns the period key for a timestamp: midnight UTC of the
// calendar date for daily habits, midnight UTC of the ISO week's Monday
// for weekly habits. Equal keys mean the same period.
func PeriodStart(p schema.Periodicity, t time.Time) time.Time {
	if p == schema.WeeklyPeriod {
		// Back up to Monday. time.Weekday puts Sunday at 0.
		weekday := int(t.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		t = t.AddDate(0, 0, -(weekday - 1))
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// prevPeriodStart returns the key of the period immediately before start.
func prevPeriodStart(p schema.Periodicity, start time.Time) time.Time {
	if p == schema.WeeklyPeriod {
		return start.AddDate(0, 0, -7)
	}
	return start.AddDate(0, 0, -1)
}
