package get_user_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability"
)

// UseCase use case для вычисления свободных слотов одного пользователя
type UseCase struct {
	availabilityRepo AvailabilityRepository
	eventRepo        EventRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	eventRepo EventRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		eventRepo:        eventRepo,
		logger:           logger,
	}
}

// Execute выполняет use case вычисления свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetUserSlots: user=%d, date=%s", req.UserID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetUserSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Окно доступности на день недели запрошенной даты
	dayOfWeek := int(req.Date.Weekday())

	avail, err := uc.availabilityRepo.GetByUserAndDay(ctx, req.UserID, dayOfWeek)
	if err != nil {
		// Отсутствие окна доступности - не ошибка, а пустой результат
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			uc.logger.Info("GetUserSlots: no availability for user=%d on dayOfWeek=%d", req.UserID, dayOfWeek)
			return emptyResponse(req), nil
		}
		uc.logger.Error("GetUserSlots: failed to get availability for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 3. Материализуем окно в абсолютный UTC диапазон на дату
	window, err := avail.Materialize(req.Date)
	if err != nil {
		uc.logger.Error("GetUserSlots: failed to materialize availability id=%d: %v", avail.ID, err)
		return nil, fmt.Errorf("%w: failed to materialize availability: %v", ErrInternal, err)
	}

	// 4. Занятые события пользователя на дату (порядок по start_time
	// гарантирует репозиторий)
	events, err := uc.eventRepo.ListForAttendees(ctx, []int64{req.UserID}, req.Date)
	if err != nil {
		uc.logger.Error("GetUserSlots: failed to get events for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get events: %v", ErrInternal, err)
	}

	booked := make([]domain.TimeRange, len(events))
	for i, e := range events {
		booked[i] = e.Range()
	}

	// 5. Вычитаем занятое из окна доступности
	free := domain.FreeSlots(window, booked)

	uc.logger.Info("GetUserSlots: computed %d free slots for user=%d, date=%s",
		len(free), req.UserID, req.Date.Format(domain.DateFormat))

	return &Response{
		UserID: req.UserID,
		Date:   req.Date,
		Slots:  slotsFromRanges(free),
	}, nil
}
