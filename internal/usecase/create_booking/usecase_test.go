package create_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ArenaBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ArenaBookingService/internal/usecase/resolve_availability"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/ptr"
)

type fakeResolver struct {
	slots []domain.Slot
	err   error
	calls int
}

func (f *fakeResolver) Execute(_ context.Context, req *resolve_availability.Request) (*resolve_availability.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &resolve_availability.Response{SportID: req.SportID, Date: req.Date, Slots: f.slots}, nil
}

type fakeBookingRepo struct {
	created []*domain.Booking
	err     error
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	b.ID = int64(len(f.created) + 1)
	f.created = append(f.created, b)
	return b, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeEvents struct {
	created []*domain.Booking
}

func (f *fakeEvents) BookingCreated(_ context.Context, b *domain.Booking) {
	f.created = append(f.created, b)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	today    = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	tomorrow = today.AddDate(0, 0, 1)
)

func grid() []domain.Slot {
	return []domain.Slot{
		{SportID: 1, Date: tomorrow, StartTime: "10:00", EndTime: "11:00", Status: domain.SlotAvailable, Price: ptr.Ptr(int64(1000))},
		{SportID: 1, Date: tomorrow, StartTime: "11:00", EndTime: "12:00", Status: domain.SlotBooked},
		{SportID: 1, Date: tomorrow, StartTime: "12:00", EndTime: "13:00", Status: domain.SlotBlocked},
		{SportID: 1, Date: tomorrow, StartTime: "19:00", EndTime: "20:00", Status: domain.SlotAvailable, Price: ptr.Ptr(int64(1500))},
	}
}

type testEnv struct {
	resolver *fakeResolver
	repo     *fakeBookingRepo
	tx       *fakeTxManager
	events   *fakeEvents
	uc       *UseCase
}

func newTestEnv(now time.Time, advanceDays int) *testEnv {
	env := &testEnv{
		resolver: &fakeResolver{slots: grid()},
		repo:     &fakeBookingRepo{},
		tx:       &fakeTxManager{},
		events:   &fakeEvents{},
	}
	env.uc = NewUseCase(env.resolver, env.repo, env.tx, env.events, fixedTime{now: now}, advanceDays, nopLogger{})
	return env
}

func TestUseCase_Execute_Success(t *testing.T) {
	env := newTestEnv(today.Add(9*time.Hour), 0)

	resp, err := env.uc.Execute(context.Background(), &Request{UserID: 7, SportID: 1, Date: tomorrow, StartTime: "19:00"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(1500), resp.Price)
	assert.Equal(t, "20:00", resp.EndTime.String())
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 1, env.tx.calls)
	require.Len(t, env.events.created, 1)
	assert.Equal(t, int64(7), env.events.created[0].UserID)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		advance int
		setup   func(env *testEnv)
		req     *Request
		wantErr error
	}{
		{
			name:    "нет пользователя",
			now:     today,
			req:     &Request{SportID: 1, Date: tomorrow, StartTime: "10:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "некорректное время",
			now:     today,
			req:     &Request{UserID: 7, SportID: 1, Date: tomorrow, StartTime: "25:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "дата в прошлом",
			now:     tomorrow.AddDate(0, 0, 1),
			req:     &Request{UserID: 7, SportID: 1, Date: tomorrow, StartTime: "10:00"},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "слишком далеко",
			now:     today,
			advance: 1,
			req:     &Request{UserID: 7, SportID: 1, Date: today.AddDate(0, 0, 5), StartTime: "10:00"},
			wantErr: ErrDateTooFarInFuture,
		},
		{
			name:    "слот уже начался",
			now:     tomorrow.Add(10*time.Hour + 5*time.Minute),
			req:     &Request{UserID: 7, SportID: 1, Date: tomorrow, StartTime: "10:00"},
			wantErr: ErrTooLateToBook,
		},
		{
			name:    "время не из сетки",
			now:     today,
			req:     &Request{UserID: 7, SportID: 1, Date: tomorrow, StartTime: "10:30"},
			wantErr: ErrInvalidTimeSlot,
		},
		{
			name:    "слот забронирован",
			now:     today,
			req:     &Request{UserID: 7, SportID: 1, Date: tomorrow, StartTime: "11:00"},
			wantErr: ErrSlotNotAvailable,
		},
		{
			name:    "слот заблокирован",
			now:     today,
			req:     &Request{UserID: 7, SportID: 1, Date: tomorrow, StartTime: "12:00"},
			wantErr: ErrSlotNotAvailable,
		},
		{
			name:    "площадка не найдена",
			now:     today,
			setup:   func(env *testEnv) { env.resolver.err = resolve_availability.ErrSportNotFound },
			req:     &Request{UserID: 7, SportID: 1, Date: tomorrow, StartTime: "10:00"},
			wantErr: ErrSportNotFound,
		},
		{
			name: "некорректная конфигурация",
			now:  today,
			setup: func(env *testEnv) {
				env.resolver.err = fmt.Errorf("%w: bad hours", resolve_availability.ErrInvalidConfiguration)
			},
			req:     &Request{UserID: 7, SportID: 1, Date: tomorrow, StartTime: "10:00"},
			wantErr: ErrInvalidConfiguration,
		},
		{
			name:    "ошибка расчета",
			now:     today,
			setup:   func(env *testEnv) { env.resolver.err = errors.New("boom") },
			req:     &Request{UserID: 7, SportID: 1, Date: tomorrow, StartTime: "10:00"},
			wantErr: ErrInternal,
		},
		{
			name: "конфликт при вставке",
			now:  today,
			setup: func(env *testEnv) {
				env.repo.err = fmt.Errorf("%w: Create - exclusion", bookingRepo.ErrSlotNotAvailable)
			},
			req:     &Request{UserID: 7, SportID: 1, Date: tomorrow, StartTime: "10:00"},
			wantErr: ErrSlotNotAvailable,
		},
		{
			name:    "ошибка вставки",
			now:     today,
			setup:   func(env *testEnv) { env.repo.err = errors.New("db down") },
			req:     &Request{UserID: 7, SportID: 1, Date: tomorrow, StartTime: "10:00"},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(tt.now, tt.advance)
			if tt.setup != nil {
				tt.setup(env)
			}

			resp, err := env.uc.Execute(context.Background(), tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, env.events.created)
		})
	}
}

func TestValidateBookingTime(t *testing.T) {
	now := today.Add(10*time.Hour + 30*time.Minute)

	assert.NoError(t, validateBookingTime(today, "11:00", now))
	assert.ErrorIs(t, validateBookingTime(today, "10:00", now), ErrTooLateToBook)
	assert.ErrorIs(t, validateBookingTime(today, "10:30", now), ErrTooLateToBook)
	assert.NoError(t, validateBookingTime(tomorrow, "08:00", now))
}
