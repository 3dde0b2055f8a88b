package get_user_slots

import (
	"context"
	"errors"
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

func availabilityNineToFive(t *testing.T, userID int64) *domain.WeeklyAvailability {
	t.Helper()
	return &domain.WeeklyAvailability{
		ID:        1,
		UserID:    userID,
		DayOfWeek: 2,
		StartTime: ts(t, "09:00"),
		EndTime:   ts(t, "17:00"),
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

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&mockAvailabilityRepo{}, &mockEventRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_NoAvailability_ReturnsEmpty(t *testing.T) {
	availRepo := &mockAvailabilityRepo{
		getByUserAndDay: func(ctx context.Context, userID int64, dayOfWeek int) (*domain.WeeklyAvailability, error) {
			return nil, availabilityRepo.ErrAvailabilityNotFound
		},
	}
	uc := NewUseCase(availRepo, &mockEventRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.UserID)
	assert.Empty(t, resp.Slots)
}

func TestExecute_NoEvents_WholeWindowFree(t *testing.T) {
	availRepo := &mockAvailabilityRepo{
		getByUserAndDay: func(ctx context.Context, userID int64, dayOfWeek int) (*domain.WeeklyAvailability, error) {
			assert.Equal(t, 2, dayOfWeek)
			return availabilityNineToFive(t, userID), nil
		},
	}
	eventRepo := &mockEventRepo{
		listForAttendees: func(ctx context.Context, userIDs []int64, date time.Time) ([]*domain.Event, error) {
			assert.Equal(t, []int64{1}, userIDs)
			return nil, nil
		},
	}
	uc := NewUseCase(availRepo, eventRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, at(9, 0), resp.Slots[0].Start)
	assert.Equal(t, at(17, 0), resp.Slots[0].End)
}

func TestExecute_EventsCarveOutSlots(t *testing.T) {
	availRepo := &mockAvailabilityRepo{
		getByUserAndDay: func(ctx context.Context, userID int64, dayOfWeek int) (*domain.WeeklyAvailability, error) {
			return availabilityNineToFive(t, userID), nil
		},
	}
	eventRepo := &mockEventRepo{
		listForAttendees: func(ctx context.Context, userIDs []int64, date time.Time) ([]*domain.Event, error) {
			return []*domain.Event{
				event(1, at(10, 0), at(11, 0)),
				event(2, at(13, 30), at(14, 0)),
			}, nil
		},
	}
	uc := NewUseCase(availRepo, eventRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)
	assert.Equal(t, Slot{Start: at(9, 0), End: at(10, 0)}, resp.Slots[0])
	assert.Equal(t, Slot{Start: at(11, 0), End: at(13, 30)}, resp.Slots[1])
	assert.Equal(t, Slot{Start: at(14, 0), End: at(17, 0)}, resp.Slots[2])
}

func TestExecute_FullyBooked_ReturnsEmpty(t *testing.T) {
	availRepo := &mockAvailabilityRepo{
		getByUserAndDay: func(ctx context.Context, userID int64, dayOfWeek int) (*domain.WeeklyAvailability, error) {
			return availabilityNineToFive(t, userID), nil
		},
	}
	eventRepo := &mockEventRepo{
		listForAttendees: func(ctx context.Context, userIDs []int64, date time.Time) ([]*domain.Event, error) {
			return []*domain.Event{event(1, at(9, 0), at(17, 0))}, nil
		},
	}
	uc := NewUseCase(availRepo, eventRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_RepoError_WrapsInternal(t *testing.T) {
	availRepo := &mockAvailabilityRepo{
		getByUserAndDay: func(ctx context.Context, userID int64, dayOfWeek int) (*domain.WeeklyAvailability, error) {
			return nil, errors.New("connection refused")
		},
	}
	uc := NewUseCase(availRepo, &mockEventRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate})
	assert.ErrorIs(t, err, ErrInternal)
}
