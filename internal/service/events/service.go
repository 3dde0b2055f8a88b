package events

import (
	"context"
	"errors"
	"fmt"

	eventRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/event"
	"github.com/m04kA/SMC-SchedulingService/internal/service/events/models"
)

// Service сервис для чтения событий
type Service struct {
	eventRepo EventRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса событий
func NewService(eventRepo EventRepository, logger Logger) *Service {
	return &Service{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// GetByID возвращает событие вместе со списком участников
func (s *Service) GetByID(ctx context.Context, eventID int64) (*models.EventResponse, error) {
	s.logger.Info("GetByID: fetching event id=%d", eventID)

	if eventID <= 0 {
		s.logger.Warn("GetByID: invalid event id=%d", eventID)
		return nil, fmt.Errorf("%w: eventId must be positive", ErrInvalidInput)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("GetByID: event id=%d not found", eventID)
			return nil, ErrEventNotFound
		}
		s.logger.Error("GetByID: repository error for event=%d: %v", eventID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	attendeeIDs, err := s.eventRepo.ListAttendeeIDs(ctx, eventID)
	if err != nil {
		s.logger.Error("GetByID: failed to get attendees for event=%d: %v", eventID, err)
		return nil, fmt.Errorf("%w: GetByID - failed to get attendees: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched event id=%d with %d attendees", eventID, len(attendeeIDs))
	return models.FromDomain(event, attendeeIDs), nil
}
