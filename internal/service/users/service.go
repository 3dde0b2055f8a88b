package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	userRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SchedulingService/internal/service/users/models"
)

// Service сервис для работы с пользователями
type Service struct {
	userRepo         UserRepository
	availabilityRepo AvailabilityRepository
	eventRepo        EventRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(
	userRepo UserRepository,
	availabilityRepo AvailabilityRepository,
	eventRepo EventRepository,
	logger Logger,
) *Service {
	return &Service{
		userRepo:         userRepo,
		availabilityRepo: availabilityRepo,
		eventRepo:        eventRepo,
		logger:           logger,
	}
}

// Create регистрирует нового пользователя
func (s *Service) Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Create: creating user username=%s", req.Username)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.TrimSpace(req.Email),
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateUser) {
			s.logger.Warn("Create: duplicate user username=%s", req.Username)
			return nil, ErrDuplicateUser
		}
		s.logger.Error("Create: repository error for username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created user id=%d", user.ID)
	return models.FromDomainUser(user), nil
}

// List возвращает всех пользователей
func (s *Service) List(ctx context.Context) (*models.UserListResponse, error) {
	s.logger.Info("List: fetching users")

	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d users", len(users))
	return models.FromDomainUserList(users), nil
}

// GetProfile возвращает профиль пользователя: окна доступности и события,
// в которых он участвует
func (s *Service) GetProfile(ctx context.Context, userID int64) (*models.UserProfileResponse, error) {
	s.logger.Info("GetProfile: fetching profile for user=%d", userID)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetProfile: user id=%d not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetProfile: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}

	availabilities, err := s.availabilityRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("GetProfile: failed to get availabilities for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetProfile - failed to get availabilities: %v", ErrInternal, err)
	}

	events, err := s.eventRepo.ListByAttendee(ctx, userID)
	if err != nil {
		s.logger.Error("GetProfile: failed to get events for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetProfile - failed to get events: %v", ErrInternal, err)
	}

	s.logger.Info("GetProfile: user=%d has %d availabilities, %d events",
		userID, len(availabilities), len(events))
	return models.BuildProfile(user, availabilities, events), nil
}

// validateCreateRequest валидирует запрос на создание пользователя
func validateCreateRequest(req *models.CreateUserRequest) error {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if username == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if len(username) > domain.MaxUsernameLength {
		return fmt.Errorf("%w: username exceeds %d characters", ErrInvalidInput, domain.MaxUsernameLength)
	}
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email exceeds %d characters", ErrInvalidInput, domain.MaxEmailLength)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	return nil
}
