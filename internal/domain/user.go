package domain

import "time"

// User represents a registered user
type User struct {
	ID       int64
	Username string
	Email    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
