package domain

import "time"

// EventStatus represents the status of a booked event
type EventStatus string

const (
	StatusScheduled EventStatus = "scheduled"
	StatusCanceled  EventStatus = "canceled"
	StatusCompleted EventStatus = "completed"
)

// KnownStatuses список допустимых статусов события
var KnownStatuses = []EventStatus{
	StatusScheduled,
	StatusCanceled,
	StatusCompleted,
}

// IsValidEventStatus возвращает true для известного статуса
func IsValidEventStatus(status EventStatus) bool {
	for _, s := range KnownStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Event represents a booked event in the system.
// StartTime and EndTime are absolute UTC instants.
type Event struct {
	ID        int64
	HostID    int64
	StartTime time.Time
	EndTime   time.Time
	Status    EventStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range returns the event's time range as a half-open interval
func (e *Event) Range() TimeRange {
	return TimeRange{Start: e.StartTime, End: e.EndTime}
}

// IsCanceled returns true if the event has been canceled
func (e *Event) IsCanceled() bool {
	return e.Status == StatusCanceled
}

// Attendance связывает событие с участником
type Attendance struct {
	EventID int64
	UserID  int64
}

// DayBounds возвращает границы календарных суток date в UTC:
// [date 00:00:00, date 23:59:59]
// Используется для выборки событий, начинающихся в эти сутки
func DayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, time.UTC)
	return start, end
}
