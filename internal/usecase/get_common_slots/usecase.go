package get_common_slots

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability"
)

// UseCase use case для вычисления общих свободных слотов двух пользователей
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

// Execute выполняет use case вычисления общих свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCommonSlots: user1=%d, user2=%d, date=%s",
		req.UserID1, req.UserID2, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCommonSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Окна доступности обоих пользователей на день недели даты.
	// Две выборки независимы - выполняем параллельно и ждём обе
	dayOfWeek := int(req.Date.Weekday())

	var (
		wg             sync.WaitGroup
		avail1, avail2 *domain.WeeklyAvailability
		err1, err2     error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		avail1, err1 = uc.availabilityRepo.GetByUserAndDay(ctx, req.UserID1, dayOfWeek)
	}()
	go func() {
		defer wg.Done()
		avail2, err2 = uc.availabilityRepo.GetByUserAndDay(ctx, req.UserID2, dayOfWeek)
	}()
	wg.Wait()

	// Отсутствие окна у любого из пользователей - пустой результат без
	// частичных ответов
	if errors.Is(err1, availabilityRepo.ErrAvailabilityNotFound) ||
		errors.Is(err2, availabilityRepo.ErrAvailabilityNotFound) {
		uc.logger.Info("GetCommonSlots: no availability for one of users user1=%d, user2=%d on dayOfWeek=%d",
			req.UserID1, req.UserID2, dayOfWeek)
		return emptyResponse(req), nil
	}
	if err1 != nil {
		uc.logger.Error("GetCommonSlots: failed to get availability for user=%d: %v", req.UserID1, err1)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err1)
	}
	if err2 != nil {
		uc.logger.Error("GetCommonSlots: failed to get availability for user=%d: %v", req.UserID2, err2)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err2)
	}

	// 3. Материализуем оба окна в абсолютные UTC диапазоны
	window1, err := avail1.Materialize(req.Date)
	if err != nil {
		uc.logger.Error("GetCommonSlots: failed to materialize availability id=%d: %v", avail1.ID, err)
		return nil, fmt.Errorf("%w: failed to materialize availability: %v", ErrInternal, err)
	}

	window2, err := avail2.Materialize(req.Date)
	if err != nil {
		uc.logger.Error("GetCommonSlots: failed to materialize availability id=%d: %v", avail2.ID, err)
		return nil, fmt.Errorf("%w: failed to materialize availability: %v", ErrInternal, err)
	}

	// 4. Пересечение окон: max(начал) .. min(концов)
	window := window1.Intersect(window2)
	if window.IsEmpty() {
		uc.logger.Info("GetCommonSlots: availability windows do not overlap for user1=%d, user2=%d",
			req.UserID1, req.UserID2)
		return emptyResponse(req), nil
	}

	// 5. Объединённые события обоих пользователей на дату.
	// Чужая занятость тоже блокирует слот, порядок по start_time
	// гарантирует репозиторий
	events, err := uc.eventRepo.ListForAttendees(ctx, []int64{req.UserID1, req.UserID2}, req.Date)
	if err != nil {
		uc.logger.Error("GetCommonSlots: failed to get events for users %d, %d: %v",
			req.UserID1, req.UserID2, err)
		return nil, fmt.Errorf("%w: failed to get events: %v", ErrInternal, err)
	}

	booked := make([]domain.TimeRange, len(events))
	for i, e := range events {
		booked[i] = e.Range()
	}

	// 6. Вычитаем занятое из пересечения окон
	free := domain.FreeSlots(window, booked)

	uc.logger.Info("GetCommonSlots: computed %d common slots for user1=%d, user2=%d, date=%s",
		len(free), req.UserID1, req.UserID2, req.Date.Format(domain.DateFormat))

	return &Response{
		UserID1: req.UserID1,
		UserID2: req.UserID2,
		Date:    req.Date,
		Slots:   slotsFromRanges(free),
	}, nil
}
