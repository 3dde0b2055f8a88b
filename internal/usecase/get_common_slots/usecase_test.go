package get_common_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// testDate вторник, dayOfWeek = 2
var testDate = time.Date(2024, 10, 8, 0, 0, 0, 0, time.UTC)

type mockAvailabilityRepo struct {
	getByUserAndDay func(ctx context.Context, userID int64, dayOfWeek int) (*domain.WeeklyAvailability, error)
}

func (m *mockAvailabilityRepo) GetByUserAndDay(ctx context.Context, userID int64, dayOfWeek int) (*domain.WeeklyAvailability, error) {
	return m.getByUserAndDay(ctx, userID, dayOfWeek)
}

type mockEventRepo struct {
	listForAttendees func(ctx context.Context, userIDs []int64, date time.Time) ([]*domain.Event, error)
}

func (m *mockEventRepo) ListForAttendees(ctx context.Context, userIDs []int64, date time.Time) ([]*domain.Event, error) {
	return m.listForAttendees(ctx, userIDs, date)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func ts(t *testing.T, s string) types.TimeString {
	t.Helper()
	v, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return v
}

func at(hour, minute int) time.Time {
	return time.Date(2024, 10, 8, hour, minute, 0, 0, time.UTC)
}

func availabilityFor(t *testing.T, userID int64, start, end string) *domain.WeeklyAvailability {
	t.Helper()
	return &domain.WeeklyAvailability{
		ID:        userID,
		UserID:    userID,
		DayOfWeek: 2,
		StartTime: ts(t, start),
		EndTime:   ts(t, end),
	}
}

func event(id int64, start, end time.Time) *domain.Event {
	return &domain.Event{
		ID:        id,
		HostID:    1,
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusScheduled,
	}
}

// perUserAvailability раздает каждому пользователю свое окно доступности
func perUserAvailability(t *testing.T, windows map[int64]*domain.WeeklyAvailability) *mockAvailabilityRepo {
	t.Helper()
	return &mockAvailabilityRepo{
		getByUserAndDay: func(ctx context.Context, userID int64, dayOfWeek int) (*domain.WeeklyAvailability, error) {
			avail, ok := windows[userID]
			if !ok {
				return nil, availabilityRepo.ErrAvailabilityNotFound
			}
			return avail, nil
		},
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&mockAvailabilityRepo{}, &mockEventRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID1: 0, UserID2: 2, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID1: 1, UserID2: -5, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_OneUserWithoutAvailability_ReturnsEmpty(t *testing.T) {
	availRepo := perUserAvailability(t, map[int64]*domain.WeeklyAvailability{
		1: availabilityFor(t, 1, "09:00", "17:00"),
	})
	uc := NewUseCase(availRepo, &mockEventRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID1: 1, UserID2: 2, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DisjointWindows_ReturnsEmpty(t *testing.T) {
	availRepo := perUserAvailability(t, map[int64]*domain.WeeklyAvailability{
		1: availabilityFor(t, 1, "09:00", "12:00"),
		2: availabilityFor(t, 2, "13:00", "17:00"),
	})
	uc := NewUseCase(availRepo, &mockEventRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID1: 1, UserID2: 2, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_IntersectionWithoutEvents(t *testing.T) {
	availRepo := perUserAvailability(t, map[int64]*domain.WeeklyAvailability{
		1: availabilityFor(t, 1, "09:00", "15:00"),
		2: availabilityFor(t, 2, "11:00", "18:00"),
	})
	eventRepo := &mockEventRepo{
		listForAttendees: func(ctx context.Context, userIDs []int64, date time.Time) ([]*domain.Event, error) {
			assert.ElementsMatch(t, []int64{1, 2}, userIDs)
			return nil, nil
		},
	}
	uc := NewUseCase(availRepo, eventRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID1: 1, UserID2: 2, Date: testDate})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, at(11, 0), resp.Slots[0].Start)
	assert.Equal(t, at(15, 0), resp.Slots[0].End)
}

func TestExecute_EitherUsersEventsBlockSlots(t *testing.T) {
	availRepo := perUserAvailability(t, map[int64]*domain.WeeklyAvailability{
		1: availabilityFor(t, 1, "09:00", "17:00"),
		2: availabilityFor(t, 2, "09:00", "17:00"),
	})
	// События обоих пользователей вперемешку, отсортированы по start_time
	eventRepo := &mockEventRepo{
		listForAttendees: func(ctx context.Context, userIDs []int64, date time.Time) ([]*domain.Event, error) {
			return []*domain.Event{
				event(1, at(10, 0), at(11, 0)),
				event(2, at(10, 30), at(12, 0)),
				event(3, at(15, 0), at(16, 0)),
			}, nil
		},
	}
	uc := NewUseCase(availRepo, eventRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID1: 1, UserID2: 2, Date: testDate})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)
	assert.Equal(t, Slot{Start: at(9, 0), End: at(10, 0)}, resp.Slots[0])
	assert.Equal(t, Slot{Start: at(12, 0), End: at(15, 0)}, resp.Slots[1])
	assert.Equal(t, Slot{Start: at(16, 0), End: at(17, 0)}, resp.Slots[2])
}
