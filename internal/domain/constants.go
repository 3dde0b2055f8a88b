package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Weekday boundaries (0 = Sunday, 6 = Saturday)
const (
	MinDayOfWeek = 0
	MaxDayOfWeek = 6
)

// Business validation constants
const (
	MaxUsernameLength = 64
	MaxEmailLength    = 255
)
