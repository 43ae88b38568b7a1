package report

import "time"

// WeekBoundsUTC returns the half-open [start, end) interval of the week
// containing now, anchored at the most recent UTC midnight whose weekday
// matches weekStartDay (0 = Sunday).
func WeekBoundsUTC(now time.Time, weekStartDay int) (time.Time, time.Time) {
	if weekStartDay < 0 || weekStartDay > 6 {
		weekStartDay = 0
	}
	utc := now.UTC()
	daysBack := (int(utc.Weekday()) - weekStartDay + 7) % 7
	start := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -daysBack)
	return start, start.AddDate(0, 0, 7)
}

// DayOffset maps a timestamp to its slot in a week that starts on
// weekStartDay, using the weekday in loc. Slot 0 is the week-start day.
func DayOffset(t time.Time, loc *time.Location, weekStartDay int) int {
	return (int(t.In(loc).Weekday()) - weekStartDay + 7) % 7
}
