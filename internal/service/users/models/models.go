package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модели

// CreateUserRequest запрос на создание пользователя
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Response модели

// UserResponse пользователь в HTTP ответе
type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// AvailabilityResponse окно доступности в HTTP ответе
type AvailabilityResponse struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"userId"`
	DayOfWeek int     `json:"dayOfWeek"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Timezone  *string `json:"timezone,omitempty"`
}

// EventResponse событие в HTTP ответе
type EventResponse struct {
	ID        int64  `json:"id"`
	HostID    int64  `json:"hostId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

// UserProfileResponse профиль пользователя: окна доступности и события
type UserProfileResponse struct {
	UserResponse
	Availabilities []AvailabilityResponse `json:"availabilities"`
	Events         []EventResponse        `json:"events"`
}

// UserListResponse список пользователей
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// Converters

// FromDomainUser конвертирует domain.User в UserResponse
func FromDomainUser(user *domain.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainUserList конвертирует список domain.User в UserListResponse
func FromDomainUserList(users []*domain.User) *UserListResponse {
	result := make([]UserResponse, len(users))
	for i, user := range users {
		result[i] = *FromDomainUser(user)
	}
	return &UserListResponse{Users: result}
}

// FromDomainAvailability конвертирует domain.WeeklyAvailability в AvailabilityResponse
func FromDomainAvailability(avail *domain.WeeklyAvailability) AvailabilityResponse {
	return AvailabilityResponse{
		ID:        avail.ID,
		UserID:    avail.UserID,
		DayOfWeek: avail.DayOfWeek,
		StartTime: avail.StartTime.String(),
		EndTime:   avail.EndTime.String(),
		Timezone:  avail.Timezone,
	}
}

// FromDomainEvent конвертирует domain.Event в EventResponse
func FromDomainEvent(event *domain.Event) EventResponse {
	return EventResponse{
		ID:        event.ID,
		HostID:    event.HostID,
		StartTime: event.StartTime.Format(time.RFC3339),
		EndTime:   event.EndTime.Format(time.RFC3339),
		Status:    string(event.Status),
	}
}

// BuildProfile собирает профиль пользователя
func BuildProfile(
	user *domain.User,
	availabilities []*domain.WeeklyAvailability,
	events []*domain.Event,
) *UserProfileResponse {
	availResponses := make([]AvailabilityResponse, len(availabilities))
	for i, avail := range availabilities {
		availResponses[i] = FromDomainAvailability(avail)
	}

	eventResponses := make([]EventResponse, len(events))
	for i, event := range events {
		eventResponses[i] = FromDomainEvent(event)
	}

	return &UserProfileResponse{
		UserResponse:   *FromDomainUser(user),
		Availabilities: availResponses,
		Events:         eventResponses,
	}
}
