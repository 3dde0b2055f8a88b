package models

import (
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модели

// DeclareAvailabilityRequest запрос на объявление окна доступности
type DeclareAvailabilityRequest struct {
	DayOfWeek int     `json:"dayOfWeek"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Timezone  *string `json:"timezone,omitempty"`
}

// Response модели

// AvailabilityResponse окно доступности в HTTP ответе
type AvailabilityResponse struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"userId"`
	DayOfWeek int     `json:"dayOfWeek"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Timezone  *string `json:"timezone,omitempty"`
}

// FromDomain конвертирует domain.WeeklyAvailability в AvailabilityResponse
func FromDomain(avail *domain.WeeklyAvailability) *AvailabilityResponse {
	return &AvailabilityResponse{
		ID:        avail.ID,
		UserID:    avail.UserID,
		DayOfWeek: avail.DayOfWeek,
		StartTime: avail.StartTime.String(),
		EndTime:   avail.EndTime.String(),
		Timezone:  avail.Timezone,
	}
}
