package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArenaBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-ArenaBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/types"
)

type fakeUseCase struct {
	req *createBooking.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	end, _ := req.StartTime.AddMinutes(60)
	return &createBooking.Response{
		ID:          100,
		UserID:      req.UserID,
		SportID:     req.SportID,
		BookingDate: req.Date,
		StartTime:   req.StartTime,
		EndTime:     end,
		Status:      "pending",
		Price:       1500,
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(h *Handler, body string, userID int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if userID > 0 {
		req = req.WithContext(middleware.WithUser(req.Context(), userID, false))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	uc := &fakeUseCase{}
	rec := post(NewHandler(uc, nopLogger{}), `{"sportId":1,"date":"2025-06-14","startTime":"18:00"}`, 7)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, &createBooking.Request{
		UserID:    7,
		SportID:   1,
		Date:      time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("18:00"),
	}, uc.req)
	assert.Contains(t, rec.Body.String(), `"endTime":"19:00"`)
	assert.Contains(t, rec.Body.String(), `"price":1500`)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		userID     int64
		err        error
		wantStatus int
	}{
		{name: "без пользователя", body: `{}`, wantStatus: http.StatusUnauthorized},
		{name: "битый json", body: `{"sportId":`, userID: 7, wantStatus: http.StatusBadRequest},
		{name: "неверная дата", body: `{"sportId":1,"date":"tomorrow","startTime":"18:00"}`, userID: 7, wantStatus: http.StatusBadRequest},
		{name: "неверное время", body: `{"sportId":1,"date":"2025-06-14","startTime":"6pm"}`, userID: 7, wantStatus: http.StatusBadRequest},
		{name: "слот занят", body: `{"sportId":1,"date":"2025-06-14","startTime":"18:00"}`, userID: 7, err: createBooking.ErrSlotNotAvailable, wantStatus: http.StatusConflict},
		{name: "площадка не найдена", body: `{"sportId":1,"date":"2025-06-14","startTime":"18:00"}`, userID: 7, err: createBooking.ErrSportNotFound, wantStatus: http.StatusNotFound},
		{name: "сетка не строится", body: `{"sportId":1,"date":"2025-06-14","startTime":"18:00"}`, userID: 7, err: createBooking.ErrInvalidConfiguration, wantStatus: http.StatusUnprocessableEntity},
		{name: "время вне сетки", body: `{"sportId":1,"date":"2025-06-14","startTime":"18:30"}`, userID: 7, err: createBooking.ErrInvalidTimeSlot, wantStatus: http.StatusBadRequest},
		{name: "слишком поздно", body: `{"sportId":1,"date":"2025-06-14","startTime":"18:00"}`, userID: 7, err: createBooking.ErrTooLateToBook, wantStatus: http.StatusBadRequest},
		{name: "внутренняя ошибка", body: `{"sportId":1,"date":"2025-06-14","startTime":"18:00"}`, userID: 7, err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}), tt.body, tt.userID)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
