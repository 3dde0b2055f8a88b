package create_event

import (
	"fmt"
	"time"

	createEvent "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_event"
)

// CreateEventRequest тело запроса на создание события
type CreateEventRequest struct {
	HostID     int64   `json:"hostId"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Attendees  []int64 `json:"attendees"`
	GuestEmail *string `json:"guestEmail,omitempty"`
}

// EventResponse созданное событие в HTTP ответе
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case с парсингом времени
func (r *CreateEventRequest) ToUseCaseRequest() (*createEvent.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid startTime: %v", err)
	}
	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid endTime: %v", err)
	}

	return &createEvent.Request{
		HostID:     r.HostID,
		StartTime:  start,
		EndTime:    end,
		Attendees:  r.Attendees,
		GuestEmail: r.GuestEmail,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *createEvent.Response) *EventResponse {
	return &EventResponse{
		ID:        result.ID,
		HostID:    result.HostID,
		StartTime: result.StartTime.Format(time.RFC3339),
		EndTime:   result.EndTime.Format(time.RFC3339),
		Status:    result.Status,
		Attendees: result.Attendees,
		CreatedAt: result.CreatedAt.Format(time.RFC3339),
		UpdatedAt: result.UpdatedAt.Format(time.RFC3339),
	}
}
