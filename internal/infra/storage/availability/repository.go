package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с окнами доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое окно доступности
func (r *Repository) Create(ctx context.Context, avail *domain.WeeklyAvailability) (*domain.WeeklyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("weekly_availability").
		Columns("user_id", "day_of_week", "start_time", "end_time", "timezone").
		Values(avail.UserID, avail.DayOfWeek, avail.StartTime, avail.EndTime, avail.Timezone).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&avail.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	avail.CreatedAt = createdAt.Time
	avail.UpdatedAt = updatedAt.Time

	return avail, nil
}

// GetByUserAndDay получает окно доступности пользователя на день недели
// При нескольких записях берётся первая по ID (текущее поведение - одна запись на день)
func (r *Repository) GetByUserAndDay(ctx context.Context, userID int64, dayOfWeek int) (*domain.WeeklyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "user_id", "day_of_week", "start_time", "end_time", "timezone",
		"created_at", "updated_at",
	).
		From("weekly_availability").
		Where(squirrel.Eq{"user_id": userID, "day_of_week": dayOfWeek}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserAndDay - build select query: %v", ErrBuildQuery, err)
	}

	var avail domain.WeeklyAvailability
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&avail.ID,
		&avail.UserID,
		&avail.DayOfWeek,
		&avail.StartTime,
		&avail.EndTime,
		&avail.Timezone,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserAndDay - scan availability: %v", ErrScanRow, err)
	}

	avail.CreatedAt = createdAt.Time
	avail.UpdatedAt = updatedAt.Time

	return &avail, nil
}

// ListByUser получает все окна доступности пользователя,
// упорядоченные по дню недели
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]*domain.WeeklyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "user_id", "day_of_week", "start_time", "end_time", "timezone",
		"created_at", "updated_at",
	).
		From("weekly_availability").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("day_of_week ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	availabilities := make([]*domain.WeeklyAvailability, 0)
	for rows.Next() {
		var avail domain.WeeklyAvailability
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&avail.ID,
			&avail.UserID,
			&avail.DayOfWeek,
			&avail.StartTime,
			&avail.EndTime,
			&avail.Timezone,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByUser - scan row: %v", ErrScanRow, err)
		}

		avail.CreatedAt = createdAt.Time
		avail.UpdatedAt = updatedAt.Time
		availabilities = append(availabilities, &avail)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - rows error: %v", ErrScanRow, err)
	}

	return availabilities, nil
}
