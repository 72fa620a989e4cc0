package core

import (
	"testing"
	"time"

	"github.com/huangsam/habitctl/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerAddAndList(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.AddHabit("Exercise", schema.DailyPeriod, monday))
	require.NoError(t, tracker.AddHabit("Call Family", schema.WeeklyPeriod, monday))

	summaries := tracker.ListHabits()
	require.Len(t, summaries, 2)
	assert.Equal(t, "Exercise", summaries[0].Name)
	assert.Equal(t, schema.DailyPeriod, summaries[0].Periodicity)
	assert.Equal(t, 0, summaries[0].Streak)
	assert.Equal(t, "Call Family", summaries[1].Name)
	assert.Equal(t, schema.WeeklyPeriod, summaries[1].Periodicity)
	assert.Equal(t, 0, summaries[1].Streak)
}

func TestTrackerAddInvalidPeriodicityLeavesTrackerUnchanged(t *testing.T) {
	tracker := NewTracker()
	err := tracker.AddHabit("Test", schema.Periodicity("monthly"), monday)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrValidation)
	assert.Equal(t, 0, tracker.Len())

	// The rejected name must remain usable afterwards.
	require.NoError(t, tracker.AddHabit("Test", schema.DailyPeriod, monday))
	assert.Equal(t, 1, tracker.Len())
}

func TestTrackerAddDuplicateName(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.AddHabit("Exercise", schema.DailyPeriod, monday))

	err := tracker.AddHabit("Exercise", schema.WeeklyPeriod, monday)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrDuplicateHabit)
	assert.Equal(t, 1, tracker.Len())
}

func TestTrackerCompleteHabit(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.AddHabit("Exercise", schema.DailyPeriod, monday))

	h, err := tracker.CompleteHabit("Exercise", monday)
	require.NoError(t, err)
	assert.Len(t, h.Completions, 1)

	// Same calendar day again fails and the count stays put.
	_, err = tracker.CompleteHabit("Exercise", monday.Add(2*time.Hour))
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrDuplicateCompletion)
	assert.Len(t, h.Completions, 1)
}

func TestTrackerCompleteUnknownHabit(t *testing.T) {
	tracker := NewTracker()
	_, err := tracker.CompleteHabit("Nope", monday)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrHabitNotFound)
}

func TestTrackerDeleteHabit(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.AddHabit("Exercise", schema.DailyPeriod, monday))
	require.NoError(t, tracker.AddHabit("Read", schema.DailyPeriod, monday))
	require.NoError(t, tracker.AddHabit("Meditate", schema.DailyPeriod, monday))

	require.NoError(t, tracker.DeleteHabit("Read"))
	assert.Equal(t, 2, tracker.Len())

	// Deleted habit is gone for every operation.
	_, err := tracker.GetStreak("Read")
	assert.ErrorIs(t, err, schema.ErrHabitNotFound)
	_, err = tracker.CompleteHabit("Read", monday)
	assert.ErrorIs(t, err, schema.ErrHabitNotFound)
	assert.ErrorIs(t, tracker.DeleteHabit("Read"), schema.ErrHabitNotFound)

	// Remaining habits keep their order and stay addressable.
	summaries := tracker.ListHabits()
	require.Len(t, summaries, 2)
	assert.Equal(t, "Exercise", summaries[0].Name)
	assert.Equal(t, "Meditate", summaries[1].Name)
	_, err = tracker.CompleteHabit("Meditate", monday)
	assert.NoError(t, err)
}

func TestTrackerFilterByPeriodicity(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.AddHabit("Daily 1", schema.DailyPeriod, monday))
	require.NoError(t, tracker.AddHabit("Weekly 1", schema.WeeklyPeriod, monday))
	require.NoError(t, tracker.AddHabit("Daily 2", schema.DailyPeriod, monday))

	daily := tracker.FilterByPeriodicity(schema.DailyPeriod)
	require.Len(t, daily, 2)
	assert.Equal(t, "Daily 1", daily[0].Name)
	assert.Equal(t, "Daily 2", daily[1].Name)

	weekly := tracker.FilterByPeriodicity(schema.WeeklyPeriod)
	require.Len(t, weekly, 1)
	assert.Equal(t, "Weekly 1", weekly[0].Name)
}

func TestTrackerGetStreak(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.AddHabit("Exercise", schema.DailyPeriod, monday))

	for i := range 3 {
		_, err := tracker.CompleteHabit("Exercise", monday.AddDate(0, 0, i))
		require.NoError(t, err)
	}

	streak, err := tracker.GetStreak("Exercise")
	require.NoError(t, err)
	assert.Equal(t, 3, streak)
}

func TestTrackerLongestStreakHabit(t *testing.T) {
	tracker := NewTracker()

	// Streaks 3, 5, 5, 1: the first habit with 5 must win the tie.
	for _, habit := range []struct {
		name   string
		streak int
	}{
		{"Three", 3},
		{"FirstFive", 5},
		{"SecondFive", 5},
		{"One", 1},
	} {
		require.NoError(t, tracker.AddHabit(habit.name, schema.DailyPeriod, monday))
		for i := range habit.streak {
			_, err := tracker.CompleteHabit(habit.name, monday.AddDate(0, 0, i))
			require.NoError(t, err)
		}
	}

	best, err := tracker.LongestStreakHabit()
	require.NoError(t, err)
	assert.Equal(t, "FirstFive", best.Name)
	assert.Equal(t, 5, CurrentStreak(best))
}

func TestTrackerLongestStreakHabitEmpty(t *testing.T) {
	tracker := NewTracker()
	_, err := tracker.LongestStreakHabit()
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrEmptyTracker)
}

func TestNewTrackerFromHabits(t *testing.T) {
	habits := []*schema.Habit{
		{Name: "Exercise", Periodicity: schema.DailyPeriod, CreatedAt: monday},
		{Name: "Read", Periodicity: schema.DailyPeriod, CreatedAt: monday},
	}
	tracker, err := NewTrackerFromHabits(habits)
	require.NoError(t, err)
	assert.Equal(t, 2, tracker.Len())

	streak, err := tracker.GetStreak("Read")
	require.NoError(t, err)
	assert.Equal(t, 0, streak)
}

func TestNewTrackerFromHabitsDuplicateName(t *testing.T) {
	habits := []*schema.Habit{
		{Name: "Exercise", Periodicity: schema.DailyPeriod},
		{Name: "Exercise", Periodicity: schema.WeeklyPeriod},
	}
	_, err := NewTrackerFromHabits(habits)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrPersistence)
}
