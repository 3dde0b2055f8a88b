package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyAvailability_Materialize(t *testing.T) {
	// 8 октября 2024 - вторник (weekday = 2)
	date := time.Date(2024, 10, 8, 0, 0, 0, 0, time.UTC)

	avail := &WeeklyAvailability{
		UserID:    1,
		DayOfWeek: 2,
		StartTime: "09:00",
		EndTime:   "17:00",
	}

	got, err := avail.Materialize(date)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 10, 8, 9, 0, 0, 0, time.UTC), got.Start)
	assert.Equal(t, time.Date(2024, 10, 8, 17, 0, 0, 0, time.UTC), got.End)
}

func TestWeeklyAvailability_Materialize_InvalidTime(t *testing.T) {
	date := time.Date(2024, 10, 8, 0, 0, 0, 0, time.UTC)

	avail := &WeeklyAvailability{
		UserID:    1,
		DayOfWeek: 2,
		StartTime: "not-a-time",
		EndTime:   "17:00",
	}

	_, err := avail.Materialize(date)
	assert.Error(t, err)
}

func TestWeeklyAvailability_MatchesDate(t *testing.T) {
	avail := &WeeklyAvailability{DayOfWeek: 2}

	tuesday := time.Date(2024, 10, 8, 0, 0, 0, 0, time.UTC)
	wednesday := time.Date(2024, 10, 9, 0, 0, 0, 0, time.UTC)

	assert.True(t, avail.MatchesDate(tuesday))
	assert.False(t, avail.MatchesDate(wednesday))
}

func TestIsValidDayOfWeek(t *testing.T) {
	assert.True(t, IsValidDayOfWeek(0))
	assert.True(t, IsValidDayOfWeek(6))
	assert.False(t, IsValidDayOfWeek(-1))
	assert.False(t, IsValidDayOfWeek(7))
}

func TestDayBounds(t *testing.T) {
	date := time.Date(2024, 10, 8, 15, 30, 0, 0, time.UTC)

	start, end := DayBounds(date)

	assert.Equal(t, time.Date(2024, 10, 8, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 10, 8, 23, 59, 59, 0, time.UTC), end)
}
