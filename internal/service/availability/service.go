package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	userRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Service сервис для работы с недельными окнами доступности
type Service struct {
	availabilityRepo AvailabilityRepository
	userRepo         UserRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	availabilityRepo AvailabilityRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

// Declare объявляет недельное окно доступности для пользователя
func (s *Service) Declare(ctx context.Context, userID int64, req *models.DeclareAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Declare: declaring availability for user=%d day=%d", userID, req.DayOfWeek)

	start, end, err := validateDeclareRequest(userID, req)
	if err != nil {
		s.logger.Warn("Declare: validation failed for user=%d: %v", userID, err)
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Declare: user id=%d not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Declare: failed to check user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Declare - failed to check user: %v", ErrInternal, err)
	}

	avail, err := s.availabilityRepo.Create(ctx, &domain.WeeklyAvailability{
		UserID:    userID,
		DayOfWeek: req.DayOfWeek,
		StartTime: start,
		EndTime:   end,
		Timezone:  req.Timezone,
	})
	if err != nil {
		s.logger.Error("Declare: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Declare - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Declare: successfully created availability id=%d for user=%d", avail.ID, userID)
	return models.FromDomain(avail), nil
}

// validateDeclareRequest валидирует запрос и парсит время начала и конца окна
func validateDeclareRequest(userID int64, req *models.DeclareAvailabilityRequest) (types.TimeString, types.TimeString, error) {
	var zero types.TimeString

	if userID <= 0 {
		return zero, zero, fmt.Errorf("%w: userId must be positive", ErrInvalidInput)
	}
	if !domain.IsValidDayOfWeek(req.DayOfWeek) {
		return zero, zero, fmt.Errorf("%w: dayOfWeek must be between %d and %d",
			ErrInvalidInput, domain.MinDayOfWeek, domain.MaxDayOfWeek)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return zero, zero, fmt.Errorf("%w: startTime must be in HH:MM format", ErrInvalidInput)
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return zero, zero, fmt.Errorf("%w: endTime must be in HH:MM format", ErrInvalidInput)
	}
	if !start.IsBefore(end) {
		return zero, zero, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	return start, end, nil
}
