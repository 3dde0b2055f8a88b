package domain

import "time"

// TimeRange represents a half-open interval [Start, End) of absolute UTC instants
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NewTimeRange создает диапазон времени
func NewTimeRange(start, end time.Time) TimeRange {
	return TimeRange{Start: start, End: end}
}

// IsEmpty returns true if the range does not cover any time
func (r TimeRange) IsEmpty() bool {
	return !r.Start.Before(r.End)
}

// Duration returns the length of the range
func (r TimeRange) Duration() time.Duration {
	if r.IsEmpty() {
		return 0
	}
	return r.End.Sub(r.Start)
}

// Overlaps returns true if the two half-open intervals actually share time.
// Ranges that merely touch at a boundary do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Contains returns true if the instant t lies within [Start, End)
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Intersect возвращает пересечение двух диапазонов
// Пересечение: max(Start) .. min(End); пустой диапазон, если пересечения нет
func (r TimeRange) Intersect(other TimeRange) TimeRange {
	start := r.Start
	if other.Start.After(start) {
		start = other.Start
	}

	end := r.End
	if other.End.Before(end) {
		end = other.End
	}

	return TimeRange{Start: start, End: end}
}

// Before определяет порядок диапазонов по времени начала
func (r TimeRange) Before(other TimeRange) bool {
	return r.Start.Before(other.Start)
}
