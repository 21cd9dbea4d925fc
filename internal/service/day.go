package service

import (
	"time"

	"github.com/aqualog/hydration-api/internal/domain"
)

const dateLayout = "2006-01-02"

// calendarDay maps an instant to its calendar date in loc. The date is keyed
// as a UTC midnight so the same date always compares and persists identically
// regardless of where it was computed.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// localDayBounds returns the UTC instants that open and close the calendar
// date of t in loc. Intake windows use these so a log at 23:30 local lands on
// the right day.
func localDayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}

func userLocation(user *domain.User) *time.Location {
	loc, err := time.LoadLocation(user.Timezone)
	if err != nil || loc == nil {
		return time.UTC
	}
	return loc
}
