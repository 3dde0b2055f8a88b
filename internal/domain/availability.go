package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// WeeklyAvailability represents a user's recurring free window for one weekday
type WeeklyAvailability struct {
	ID        int64
	UserID    int64
	DayOfWeek int // 0 = Sunday ... 6 = Saturday
	StartTime types.TimeString
	EndTime   types.TimeString
	Timezone  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValidDayOfWeek returns true if day lies within [0, 6]
func IsValidDayOfWeek(day int) bool {
	return day >= MinDayOfWeek && day <= MaxDayOfWeek
}

// MatchesDate returns true if the record's weekday equals the weekday of date
func (a *WeeklyAvailability) MatchesDate(date time.Time) bool {
	return a.DayOfWeek == int(date.Weekday())
}

// Materialize совмещает повторяющееся окно с конкретной календарной датой
// и возвращает абсолютный UTC диапазон [date+StartTime, date+EndTime)
//
// Предусловие: DayOfWeek записи совпадает с днём недели date
// (это гарантирует выборка по (user_id, day_of_week))
func (a *WeeklyAvailability) Materialize(date time.Time) (TimeRange, error) {
	start, err := a.StartTime.OnDate(date, time.UTC)
	if err != nil {
		return TimeRange{}, err
	}

	end, err := a.EndTime.OnDate(date, time.UTC)
	if err != nil {
		return TimeRange{}, err
	}

	return TimeRange{Start: start, End: end}, nil
}
