package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekBoundsUTC(t *testing.T) {
	// Wednesday 2026-03-04 15:30 UTC
	now := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)

	t.Run("sunday start", func(t *testing.T) {
		start, end := WeekBoundsUTC(now, 0)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("monday start", func(t *testing.T) {
		start, end := WeekBoundsUTC(now, 1)
		assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("week start on today anchors at today midnight", func(t *testing.T) {
		start, _ := WeekBoundsUTC(now, 3) // Wednesday
		assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), start)
	})

	t.Run("non utc input normalized", func(t *testing.T) {
		east := time.FixedZone("UTC+10", 10*3600)
		// 2026-03-05 01:00 +10 is still Wednesday 15:00 UTC
		startLocal, _ := WeekBoundsUTC(time.Date(2026, 3, 5, 1, 0, 0, 0, east), 0)
		startUTC, _ := WeekBoundsUTC(now, 0)
		assert.Equal(t, startUTC, startLocal)
	})

	t.Run("invalid day falls back to sunday", func(t *testing.T) {
		start, _ := WeekBoundsUTC(now, 9)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), start)
	})
}

func TestDayOffset(t *testing.T) {
	tue := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, DayOffset(tue, time.UTC, 0))
	assert.Equal(t, 1, DayOffset(tue, time.UTC, 1))

	// 2026-03-03 02:00 UTC is still Monday evening in Chicago
	chicago, err := time.LoadLocation("America/Chicago")
	assert.NoError(t, err)
	early := time.Date(2026, 3, 3, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, DayOffset(early, time.UTC, 1))
	assert.Equal(t, 0, DayOffset(early, chicago, 1))
}
