package reschedule_booking

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArenaBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-ArenaBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-ArenaBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/types"
)

type fakeService struct {
	req *models.RescheduleBookingRequest
	err error
}

func (f *fakeService) Reschedule(_ context.Context, _ int64, req *models.RescheduleBookingRequest) (*models.BookingResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{ID: 2, BookingDate: "2025-06-15", StartTime: "19:00", EndTime: "20:00", Status: "pending"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}/reschedule", h.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/1/reschedule", strings.NewReader(body))
	req = req.WithContext(middleware.WithUser(req.Context(), 7, false))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Reschedule(t *testing.T) {
	svc := &fakeService{}
	rec := serve(NewHandler(svc, nopLogger{}), `{"date":"2025-06-15","startTime":"19:00"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), svc.req.Date)
	assert.Equal(t, types.TimeString("19:00"), svc.req.StartTime)
	assert.Contains(t, rec.Body.String(), `"id":2`)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "без времени", body: `{"date":"2025-06-15"}`, wantStatus: http.StatusBadRequest},
		{name: "слот занят", body: `{"date":"2025-06-15","startTime":"19:00"}`, err: bookings.ErrSlotNotAvailable, wantStatus: http.StatusConflict},
		{name: "уже отменено", body: `{"date":"2025-06-15","startTime":"19:00"}`, err: bookings.ErrCannotCancel, wantStatus: http.StatusConflict},
		{name: "вне сетки", body: `{"date":"2025-06-15","startTime":"19:30"}`, err: fmt.Errorf("%w: slot", bookings.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "сетка не строится", body: `{"date":"2025-06-15","startTime":"19:00"}`, err: bookings.ErrInvalidConfiguration, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeService{err: tt.err}, nopLogger{}), tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
