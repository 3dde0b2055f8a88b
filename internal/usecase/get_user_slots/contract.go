package get_user_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	// GetByUserAndDay получает окно доступности пользователя на день недели
	GetByUserAndDay(ctx context.Context, userID int64, dayOfWeek int) (*domain.WeeklyAvailability, error)
}

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	// ListForAttendees получает события участников на дату,
	// упорядоченные по возрастанию start_time
	ListForAttendees(ctx context.Context, userIDs []int64, date time.Time) ([]*domain.Event, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
