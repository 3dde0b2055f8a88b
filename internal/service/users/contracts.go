package users

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*domain.WeeklyAvailability, error)
}

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	ListByAttendee(ctx context.Context, userID int64) ([]*domain.Event, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
