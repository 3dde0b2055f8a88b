package event

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// eventColumns колонки таблицы events в порядке сканирования
var eventColumns = []string{
	"e.id",
	"e.host_id",
	"e.start_time",
	"e.end_time",
	"e.status",
	"e.created_at",
	"e.updated_at",
}

// Repository репозиторий для работы с событиями и их участниками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория событий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое событие
// Если в контексте передана активная транзакция, использует её.
// Транзакция обязательна при создании события с проверкой пересечений -
// иначе возможна гонка между проверкой и записью.
func (r *Repository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("events").
		Columns("host_id", "start_time", "end_time", "status").
		Values(event.HostID, event.StartTime, event.EndTime, event.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&event.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time

	return event, nil
}

// AddAttendees добавляет участников к событию
func (r *Repository) AddAttendees(ctx context.Context, eventID int64, userIDs []int64) error {
	if len(userIDs) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("event_attendees").
		Columns("event_id", "user_id")
	for _, userID := range userIDs {
		insertBuilder = insertBuilder.Values(eventID, userID)
	}

	// Повторное добавление того же участника не считается ошибкой
	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (event_id, user_id) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddAttendees - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddAttendees - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает событие по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(eventColumns...).
		From("events e").
		Where(squirrel.Eq{"e.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var event domain.Event
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&event.ID,
		&event.HostID,
		&event.StartTime,
		&event.EndTime,
		&event.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan event: %v", ErrScanRow, err)
	}

	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time

	return &event, nil
}

// ListAttendeeIDs получает ID участников события, упорядоченные по возрастанию
func (r *Repository) ListAttendeeIDs(ctx context.Context, eventID int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("user_id").
		From("event_attendees").
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("user_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAttendeeIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAttendeeIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	userIDs := make([]int64, 0)
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("%w: ListAttendeeIDs - scan user_id: %v", ErrScanRow, err)
		}
		userIDs = append(userIDs, userID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAttendeeIDs - rows error: %v", ErrScanRow, err)
	}

	return userIDs, nil
}

// ListForAttendees получает события на календарную дату, в которых хотя бы
// один из userIDs числится участником
//
// Выбираются события, начинающиеся в пределах суток [00:00:00, 23:59:59] UTC.
// Результат упорядочен по возрастанию start_time - этот порядок является
// контрактом для вычисления свободных слотов (domain.FreeSlots) и не должен
// нарушаться. Статус события не фильтруется: отменённые события по текущим
// правилам продолжают занимать слот.
func (r *Repository) ListForAttendees(ctx context.Context, userIDs []int64, date time.Time) ([]*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayStart, dayEnd := domain.DayBounds(date)

	// DISTINCT схлопывает дубликаты, когда несколько userIDs участвуют
	// в одном и том же событии
	columns := append([]string{"DISTINCT e.id"}, eventColumns[1:]...)

	query, args, err := psqlbuilder.Select(columns...).
		From("events e").
		Join("event_attendees ea ON ea.event_id = e.id").
		Where(squirrel.Eq{"ea.user_id": userIDs}).
		Where(squirrel.GtOrEq{"e.start_time": dayStart}).
		Where(squirrel.LtOrEq{"e.start_time": dayEnd}).
		OrderBy("e.start_time ASC, e.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListForAttendees - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForAttendees - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEvents(rows, "ListForAttendees")
}

// ListOverlapping получает события участников userIDs, пересекающиеся
// с интервалом [start, end)
//
// Используется при создании события для проверки конфликтов. Внутри
// транзакции строки блокируются (FOR UPDATE OF e), чтобы конкурентное
// бронирование того же интервала не прошло проверку одновременно.
func (r *Repository) ListOverlapping(ctx context.Context, userIDs []int64, start, end time.Time) ([]*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := append([]string{"DISTINCT e.id"}, eventColumns[1:]...)

	selectBuilder := psqlbuilder.Select(columns...).
		From("events e").
		Join("event_attendees ea ON ea.event_id = e.id").
		Where(squirrel.Eq{"ea.user_id": userIDs}).
		// Полуоткрытые интервалы: строгие неравенства, границы не пересекаются
		Where(squirrel.Lt{"e.start_time": end}).
		Where(squirrel.Gt{"e.end_time": start}).
		OrderBy("e.id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF e")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEvents(rows, "ListOverlapping")
}

// ListByAttendee получает все события, в которых пользователь числится
// участником, упорядоченные по времени начала
func (r *Repository) ListByAttendee(ctx context.Context, userID int64) ([]*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(eventColumns...).
		From("events e").
		Join("event_attendees ea ON ea.event_id = e.id").
		Where(squirrel.Eq{"ea.user_id": userID}).
		OrderBy("e.start_time ASC, e.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByAttendee - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByAttendee - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEvents(rows, "ListByAttendee")
}

// scanEvents сканирует результаты запроса в слайс событий
func (r *Repository) scanEvents(rows *sql.Rows, op string) ([]*domain.Event, error) {
	events := make([]*domain.Event, 0)

	for rows.Next() {
		var event domain.Event
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&event.ID,
			&event.HostID,
			&event.StartTime,
			&event.EndTime,
			&event.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		event.CreatedAt = createdAt.Time
		event.UpdatedAt = updatedAt.Time
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return events, nil
}
