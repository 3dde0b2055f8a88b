package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// at создает UTC момент на фиксированную дату с указанным временем
func at(hour, minute int) time.Time {
	return time.Date(2024, 10, 8, hour, minute, 0, 0, time.UTC)
}

func rng(startHour, startMin, endHour, endMin int) TimeRange {
	return TimeRange{Start: at(startHour, startMin), End: at(endHour, endMin)}
}

func TestTimeRange_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        TimeRange
		b        TimeRange
		expected bool
	}{
		{
			name:     "partial overlap",
			a:        rng(9, 0, 11, 0),
			b:        rng(10, 0, 12, 0),
			expected: true,
		},
		{
			name:     "nested range",
			a:        rng(9, 0, 17, 0),
			b:        rng(10, 0, 11, 0),
			expected: true,
		},
		{
			name:     "touching boundaries do not overlap",
			a:        rng(9, 0, 10, 0),
			b:        rng(10, 0, 11, 0),
			expected: false,
		},
		{
			name:     "disjoint ranges",
			a:        rng(9, 0, 10, 0),
			b:        rng(14, 0, 16, 0),
			expected: false,
		},
		{
			name:     "identical ranges",
			a:        rng(9, 0, 10, 0),
			b:        rng(9, 0, 10, 0),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.expected, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeRange_Intersect(t *testing.T) {
	tests := []struct {
		name     string
		a        TimeRange
		b        TimeRange
		expected TimeRange
		empty    bool
	}{
		{
			name:     "partial overlap",
			a:        rng(9, 0, 17, 0),
			b:        rng(9, 0, 15, 0),
			expected: rng(9, 0, 15, 0),
		},
		{
			name:     "nested",
			a:        rng(9, 0, 17, 0),
			b:        rng(10, 0, 11, 0),
			expected: rng(10, 0, 11, 0),
		},
		{
			name:  "no overlap",
			a:     rng(9, 0, 11, 0),
			b:     rng(14, 0, 16, 0),
			empty: true,
		},
		{
			name:  "touching boundary is empty",
			a:     rng(9, 0, 10, 0),
			b:     rng(10, 0, 11, 0),
			empty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if tt.empty {
				assert.True(t, got.IsEmpty())
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTimeRange_Contains(t *testing.T) {
	r := rng(9, 0, 17, 0)

	assert.True(t, r.Contains(at(9, 0)), "start is included")
	assert.True(t, r.Contains(at(12, 30)))
	assert.False(t, r.Contains(at(17, 0)), "end is excluded")
	assert.False(t, r.Contains(at(8, 59)))
}

func TestTimeRange_IsEmpty(t *testing.T) {
	assert.False(t, rng(9, 0, 10, 0).IsEmpty())
	assert.True(t, rng(10, 0, 10, 0).IsEmpty())
	assert.True(t, rng(11, 0, 10, 0).IsEmpty())
}
