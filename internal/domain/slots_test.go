package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreeSlots_NoBookedRanges(t *testing.T) {
	window := rng(9, 0, 17, 0)

	got := FreeSlots(window, nil)

	assert.Equal(t, []TimeRange{window}, got)
}

func TestFreeSlots_SingleBooking(t *testing.T) {
	// Окно 09:00-17:00, занято 10:00-11:00 -> [09:00-10:00, 11:00-17:00]
	window := rng(9, 0, 17, 0)
	booked := []TimeRange{rng(10, 0, 11, 0)}

	got := FreeSlots(window, booked)

	assert.Equal(t, []TimeRange{
		rng(9, 0, 10, 0),
		rng(11, 0, 17, 0),
	}, got)
}

func TestFreeSlots_BookingCoversWindow(t *testing.T) {
	window := rng(9, 0, 17, 0)
	booked := []TimeRange{rng(9, 0, 17, 0)}

	got := FreeSlots(window, booked)

	assert.Empty(t, got)
}

func TestFreeSlots_BookingExceedsWindow(t *testing.T) {
	window := rng(9, 0, 17, 0)
	booked := []TimeRange{rng(8, 0, 18, 0)}

	got := FreeSlots(window, booked)

	assert.Empty(t, got)
}

func TestFreeSlots_OverlappingBookings(t *testing.T) {
	// Пересекающиеся брони 10:00-11:30 и 11:00-12:00 схлопываются курсором
	window := rng(9, 0, 17, 0)
	booked := []TimeRange{
		rng(10, 0, 11, 30),
		rng(11, 0, 12, 0),
	}

	got := FreeSlots(window, booked)

	assert.Equal(t, []TimeRange{
		rng(9, 0, 10, 0),
		rng(12, 0, 17, 0),
	}, got)
}

func TestFreeSlots_NestedBooking(t *testing.T) {
	// Вложенная бронь не откатывает курсор назад
	window := rng(9, 0, 17, 0)
	booked := []TimeRange{
		rng(10, 0, 13, 0),
		rng(11, 0, 12, 0),
	}

	got := FreeSlots(window, booked)

	assert.Equal(t, []TimeRange{
		rng(9, 0, 10, 0),
		rng(13, 0, 17, 0),
	}, got)
}

func TestFreeSlots_BookingOutsideWindow(t *testing.T) {
	window := rng(9, 0, 17, 0)

	tests := []struct {
		name   string
		booked []TimeRange
	}{
		{name: "before window", booked: []TimeRange{rng(6, 0, 8, 0)}},
		{name: "after window", booked: []TimeRange{rng(18, 0, 19, 0)}},
		{
			name:   "both sides",
			booked: []TimeRange{rng(6, 0, 8, 0), rng(18, 0, 19, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FreeSlots(window, tt.booked)
			assert.Equal(t, []TimeRange{window}, got, "window must be returned unchanged")
		})
	}
}

func TestFreeSlots_BookingStraddlesWindowStart(t *testing.T) {
	window := rng(9, 0, 17, 0)
	booked := []TimeRange{rng(8, 0, 10, 0)}

	got := FreeSlots(window, booked)

	assert.Equal(t, []TimeRange{rng(10, 0, 17, 0)}, got)
}

func TestFreeSlots_BookingStraddlesWindowEnd(t *testing.T) {
	window := rng(9, 0, 17, 0)
	booked := []TimeRange{rng(16, 0, 18, 0)}

	got := FreeSlots(window, booked)

	assert.Equal(t, []TimeRange{rng(9, 0, 16, 0)}, got)
}

func TestFreeSlots_ZeroLengthBooking(t *testing.T) {
	// Вырожденная бронь нулевой длины делит окно, но не занимает времени
	window := rng(9, 0, 17, 0)
	booked := []TimeRange{rng(10, 0, 10, 0)}

	got := FreeSlots(window, booked)

	assert.Equal(t, []TimeRange{
		rng(9, 0, 10, 0),
		rng(10, 0, 17, 0),
	}, got)
}

func TestFreeSlots_BackToBackBookings(t *testing.T) {
	window := rng(9, 0, 12, 0)
	booked := []TimeRange{
		rng(9, 0, 10, 0),
		rng(10, 0, 11, 0),
	}

	got := FreeSlots(window, booked)

	assert.Equal(t, []TimeRange{rng(11, 0, 12, 0)}, got)
}

func TestFreeSlots_Idempotent(t *testing.T) {
	window := rng(9, 0, 17, 0)
	booked := []TimeRange{
		rng(10, 0, 11, 30),
		rng(11, 0, 12, 0),
		rng(14, 0, 15, 0),
	}

	first := FreeSlots(window, booked)
	second := FreeSlots(window, booked)

	assert.Equal(t, first, second)
}
