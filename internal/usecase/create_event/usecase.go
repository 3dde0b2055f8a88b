package create_event

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	userRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/user"
)

// UseCase use case для создания события с проверкой пересечений
type UseCase struct {
	eventRepo EventRepository
	userRepo  UserRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	eventRepo EventRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case создания события
// Проверка пересечений и запись выполняются в сериализуемой транзакции,
// чтобы конкурентное бронирование того же интервала не прошло проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateEvent: host=%d, start=%s, end=%s, attendees=%v",
		req.HostID, req.StartTime.Format(domain.DateFormat+" 15:04"),
		req.EndTime.Format(domain.DateFormat+" 15:04"), req.Attendees)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateEvent: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что организатор существует
	if _, err := uc.userRepo.GetByID(ctx, req.HostID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateEvent: host id=%d not found", req.HostID)
			return nil, ErrHostNotFound
		}
		uc.logger.Error("CreateEvent: failed to get host id=%d: %v", req.HostID, err)
		return nil, fmt.Errorf("%w: failed to get host: %v", ErrInternal, err)
	}

	// 3. Проверяем, что все заявленные участники существуют
	for _, attendeeID := range req.Attendees {
		if _, err := uc.userRepo.GetByID(ctx, attendeeID); err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				uc.logger.Warn("CreateEvent: attendee id=%d not found", attendeeID)
				return nil, fmt.Errorf("%w: id=%d", ErrAttendeeNotFound, attendeeID)
			}
			uc.logger.Error("CreateEvent: failed to get attendee id=%d: %v", attendeeID, err)
			return nil, fmt.Errorf("%w: failed to get attendee: %v", ErrInternal, err)
		}
	}

	var (
		result       *domain.Event
		participants []int64
	)

	// 4. Операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Гость по email: находим существующего пользователя
		// или создаем нового
		guestID, err := uc.resolveGuest(txCtx, req.GuestEmail)
		if err != nil {
			return err
		}

		// 4.2. Итоговый список участников: организатор, заявленные
		// участники и гость; календарь организатора тоже блокируется
		participants = dedupeUserIDs(append([]int64{req.HostID}, req.Attendees...))
		if guestID != 0 {
			participants = dedupeUserIDs(append(participants, guestID))
		}

		// 4.3. Проверяем пересечения с существующими событиями участников
		// (внутри транзакции строки блокируются)
		conflicts, err := uc.eventRepo.ListOverlapping(txCtx, participants, req.StartTime, req.EndTime)
		if err != nil {
			uc.logger.Error("CreateEvent: failed to check conflicts: %v", err)
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}

		if len(conflicts) > 0 {
			uc.logger.Warn("CreateEvent: time conflict for host=%d, conflicting event id=%d",
				req.HostID, conflicts[0].ID)
			return ErrTimeConflict
		}

		// 4.4. Создаем событие
		event := &domain.Event{
			HostID:    req.HostID,
			StartTime: req.StartTime.UTC(),
			EndTime:   req.EndTime.UTC(),
			Status:    domain.StatusScheduled,
		}

		created, err := uc.eventRepo.Create(txCtx, event)
		if err != nil {
			uc.logger.Error("CreateEvent: failed to create event: %v", err)
			return fmt.Errorf("%w: failed to create event: %v", ErrInternal, err)
		}

		// 4.5. Записываем участников
		if err := uc.eventRepo.AddAttendees(txCtx, created.ID, participants); err != nil {
			uc.logger.Error("CreateEvent: failed to add attendees to event id=%d: %v", created.ID, err)
			return fmt.Errorf("%w: failed to add attendees: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateEvent: successfully created event id=%d with %d attendees",
		result.ID, len(participants))

	return &Response{
		ID:        result.ID,
		HostID:    result.HostID,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Status:    string(result.Status),
		Attendees: participants,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}

// resolveGuest находит или создает пользователя для гостевого email
// Возвращает 0, если email не передан
func (uc *UseCase) resolveGuest(ctx context.Context, guestEmail *string) (int64, error) {
	if guestEmail == nil {
		return 0, nil
	}

	existing, err := uc.userRepo.GetByEmail(ctx, *guestEmail)
	if err == nil {
		uc.logger.Info("CreateEvent: guest email %s matches existing user id=%d", *guestEmail, existing.ID)
		return existing.ID, nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		uc.logger.Error("CreateEvent: failed to look up guest by email: %v", err)
		return 0, fmt.Errorf("%w: failed to look up guest: %v", ErrInternal, err)
	}

	guest, err := uc.userRepo.Create(ctx, &domain.User{
		Username: guestUsernameFromEmail(*guestEmail),
		Email:    *guestEmail,
	})
	if err != nil {
		uc.logger.Error("CreateEvent: failed to create guest user: %v", err)
		return 0, fmt.Errorf("%w: failed to create guest user: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateEvent: created guest user id=%d for email %s", guest.ID, *guestEmail)
	return guest.ID, nil
}
