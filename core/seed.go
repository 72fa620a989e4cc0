package core

import (
	"time"

	"github.com/huangsam/habitctl/schema"
)

// Seed habit fixtures: 3 daily and 2 weekly habits, matching the example
// data this tool ships for first-time exploration.
var seedHabits = []struct {
	name        string
	periodicity schema.Periodicity
}{
	{"Exercise", schema.DailyPeriod},
	{"Read", schema.DailyPeriod},
	{"Meditate", schema.DailyPeriod},
	{"Call Family", schema.WeeklyPeriod},
	{"Clean House", schema.WeeklyPeriod},
}

// SeedTracker builds a tracker with example habits and the given number of
// weeks of completion history ending at now. Daily habits get one completion
// per day, weekly habits one completion per week, so every seeded habit
// carries an unbroken streak.
func SeedTracker(weeks int, now time.Time) (*Tracker, error) {
	base := now.AddDate(0, 0, -weeks*7)
	tracker := NewTracker()

	for _, seed := range seedHabits {
		if err := tracker.AddHabit(seed.name, seed.periodicity, base); err != nil {
			return nil, err
		}
		step := 1
		count := weeks * 7
		if seed.periodicity == schema.WeeklyPeriod {
			step = 7
			count = weeks
		}
		for i := range count {
			ts := base.AddDate(0, 0, i*step)
			if _, err := tracker.CompleteHabit(seed.name, ts); err != nil {
				return nil, err
			}
		}
	}
	return tracker, nil
}
