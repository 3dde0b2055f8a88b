package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// EventResponse событие в HTTP ответе вместе со списком участников
type EventResponse struct {
	ID        int64   `json:"id"`
	HostID    int64   `json:"hostId"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Status    string  `json:"status"`
	Attendees []int64 `json:"attendees"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// FromDomain конвертирует domain.Event и список участников в EventResponse
func FromDomain(event *domain.Event, attendeeIDs []int64) *EventResponse {
	if attendeeIDs == nil {
		attendeeIDs = []int64{}
	}
	return &EventResponse{
		ID:        event.ID,
		HostID:    event.HostID,
		StartTime: event.StartTime.Format(time.RFC3339),
		EndTime:   event.EndTime.Format(time.RFC3339),
		Status:    string(event.Status),
		Attendees: attendeeIDs,
		CreatedAt: event.CreatedAt.Format(time.RFC3339),
		UpdatedAt: event.UpdatedAt.Format(time.RFC3339),
	}
}
