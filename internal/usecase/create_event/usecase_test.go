package create_event

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	userRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

type mockEventRepo struct {
	create          func(ctx context.Context, event *domain.Event) (*domain.Event, error)
	addAttendees    func(ctx context.Context, eventID int64, userIDs []int64) error
	listOverlapping func(ctx context.Context, userIDs []int64, start, end time.Time) ([]*domain.Event, error)
}

func (m *mockEventRepo) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	return m.create(ctx, event)
}

func (m *mockEventRepo) AddAttendees(ctx context.Context, eventID int64, userIDs []int64) error {
	return m.addAttendees(ctx, eventID, userIDs)
}

func (m *mockEventRepo) ListOverlapping(ctx context.Context, userIDs []int64, start, end time.Time) ([]*domain.Event, error) {
	return m.listOverlapping(ctx, userIDs, start, end)
}

type mockUserRepo struct {
	getByID    func(ctx context.Context, id int64) (*domain.User, error)
	getByEmail func(ctx context.Context, email string) (*domain.User, error)
	create     func(ctx context.Context, user *domain.User) (*domain.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return m.getByID(ctx, id)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.getByEmail(ctx, email)
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return m.create(ctx, user)
}

// mockTxManager выполняет функцию без реальной транзакции
type mockTxManager struct{}

func (mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func at(hour, minute int) time.Time {
	return time.Date(2024, 10, 8, hour, minute, 0, 0, time.UTC)
}

func knownUsers(ids ...int64) *mockUserRepo {
	known := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}
	return &mockUserRepo{
		getByID: func(ctx context.Context, id int64) (*domain.User, error) {
			if _, ok := known[id]; !ok {
				return nil, userRepo.ErrUserNotFound
			}
			return &domain.User{ID: id}, nil
		},
	}
}

func validRequest() *Request {
	return &Request{
		HostID:    1,
		StartTime: at(10, 0),
		EndTime:   at(11, 0),
		Attendees: []int64{2},
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&mockEventRepo{}, &mockUserRepo{}, mockTxManager{}, nopLogger{})

	cases := []struct {
		name string
		req  *Request
	}{
		{"zero host", &Request{HostID: 0, StartTime: at(10, 0), EndTime: at(11, 0), Attendees: []int64{2}}},
		{"start after end", &Request{HostID: 1, StartTime: at(11, 0), EndTime: at(10, 0), Attendees: []int64{2}}},
		{"no attendees and no guest", &Request{HostID: 1, StartTime: at(10, 0), EndTime: at(11, 0)}},
		{"negative attendee", &Request{HostID: 1, StartTime: at(10, 0), EndTime: at(11, 0), Attendees: []int64{-2}}},
		{"bad guest email", &Request{HostID: 1, StartTime: at(10, 0), EndTime: at(11, 0), GuestEmail: ptr.Ptr("not-an-email")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_HostNotFound(t *testing.T) {
	uc := NewUseCase(&mockEventRepo{}, knownUsers(2), mockTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrHostNotFound)
}

func TestExecute_AttendeeNotFound(t *testing.T) {
	uc := NewUseCase(&mockEventRepo{}, knownUsers(1), mockTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAttendeeNotFound)
}

func TestExecute_TimeConflict(t *testing.T) {
	eventRepo := &mockEventRepo{
		listOverlapping: func(ctx context.Context, userIDs []int64, start, end time.Time) ([]*domain.Event, error) {
			return []*domain.Event{{ID: 99, HostID: 2, StartTime: at(10, 30), EndTime: at(11, 30)}}, nil
		},
	}
	uc := NewUseCase(eventRepo, knownUsers(1, 2), mockTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestExecute_Success_HostIncludedInParticipants(t *testing.T) {
	var addedAttendees []int64
	eventRepo := &mockEventRepo{
		listOverlapping: func(ctx context.Context, userIDs []int64, start, end time.Time) ([]*domain.Event, error) {
			// Календарь организатора тоже проверяется на пересечения
			assert.ElementsMatch(t, []int64{1, 2}, userIDs)
			return nil, nil
		},
		create: func(ctx context.Context, event *domain.Event) (*domain.Event, error) {
			created := *event
			created.ID = 42
			return &created, nil
		},
		addAttendees: func(ctx context.Context, eventID int64, userIDs []int64) error {
			assert.Equal(t, int64(42), eventID)
			addedAttendees = userIDs
			return nil
		},
	}
	uc := NewUseCase(eventRepo, knownUsers(1, 2), mockTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.ElementsMatch(t, []int64{1, 2}, resp.Attendees)
	assert.ElementsMatch(t, []int64{1, 2}, addedAttendees)
}

func TestExecute_GuestEmail_CreatesUser(t *testing.T) {
	guestEmail := "guest@example.com"

	users := knownUsers(1)
	users.getByEmail = func(ctx context.Context, email string) (*domain.User, error) {
		assert.Equal(t, guestEmail, email)
		return nil, userRepo.ErrUserNotFound
	}
	users.create = func(ctx context.Context, user *domain.User) (*domain.User, error) {
		assert.Equal(t, guestEmail, user.Email)
		assert.Equal(t, "guest", user.Username)
		created := *user
		created.ID = 7
		return &created, nil
	}

	eventRepo := &mockEventRepo{
		listOverlapping: func(ctx context.Context, userIDs []int64, start, end time.Time) ([]*domain.Event, error) {
			return nil, nil
		},
		create: func(ctx context.Context, event *domain.Event) (*domain.Event, error) {
			created := *event
			created.ID = 43
			return &created, nil
		},
		addAttendees: func(ctx context.Context, eventID int64, userIDs []int64) error {
			return nil
		},
	}
	uc := NewUseCase(eventRepo, users, mockTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		HostID:     1,
		StartTime:  at(10, 0),
		EndTime:    at(11, 0),
		GuestEmail: ptr.Ptr(guestEmail),
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 7}, resp.Attendees)
}

func TestExecute_GuestEmail_ReusesExistingUser(t *testing.T) {
	guestEmail := "guest@example.com"

	users := knownUsers(1)
	users.getByEmail = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: 7, Email: email}, nil
	}

	eventRepo := &mockEventRepo{
		listOverlapping: func(ctx context.Context, userIDs []int64, start, end time.Time) ([]*domain.Event, error) {
			return nil, nil
		},
		create: func(ctx context.Context, event *domain.Event) (*domain.Event, error) {
			created := *event
			created.ID = 44
			return &created, nil
		},
		addAttendees: func(ctx context.Context, eventID int64, userIDs []int64) error {
			return nil
		},
	}
	uc := NewUseCase(eventRepo, users, mockTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		HostID:     1,
		StartTime:  at(10, 0),
		EndTime:    at(11, 0),
		GuestEmail: ptr.Ptr(guestEmail),
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 7}, resp.Attendees)
}
