package blocked_slots

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArenaBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-ArenaBookingService/internal/service/blocking"
	"github.com/m04kA/SMC-ArenaBookingService/internal/service/blocking/models"
)

type fakeService struct {
	createReq *models.CreateBlockedSlotRequest
	listDate  *string
	err       error
}

func (f *fakeService) Create(_ context.Context, sportID int64, req *models.CreateBlockedSlotRequest) (*models.BlockedSlotResponse, error) {
	f.createReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BlockedSlotResponse{
		ID:        7,
		SportID:   sportID,
		Date:      req.Date,
		StartTime: req.StartTime.String(),
		EndTime:   req.EndTime.String(),
		CreatedBy: req.CreatedBy,
	}, nil
}

func (f *fakeService) List(_ context.Context, _ int64, date *string) (*models.BlockedSlotListResponse, error) {
	f.listDate = date
	if f.err != nil {
		return nil, f.err
	}
	return &models.BlockedSlotListResponse{BlockedSlots: []models.BlockedSlotResponse{}}, nil
}

func (f *fakeService) Delete(_ context.Context, _ int64) error {
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/sports/{sportId}/blocked-slots", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/sports/{sportId}/blocked-slots", h.List).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/blocked-slots/{blockedSlotId}", h.Delete).Methods(http.MethodDelete)
	return r
}

func adminRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return req.WithContext(middleware.WithUser(req.Context(), 99, true))
}

func TestHandler_Create(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()
	newRouter(NewHandler(svc, nopLogger{})).ServeHTTP(rec, adminRequest(http.MethodPost,
		"/api/v1/sports/2/blocked-slots",
		`{"date":"2025-06-14","startTime":"10:00","endTime":"12:00","reason":"Турнир","createdBy":5}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.createReq)
	assert.Equal(t, int64(99), svc.createReq.CreatedBy, "автор берется из контекста, а не из тела")
	assert.Contains(t, rec.Body.String(), `"createdBy":99`)
}

func TestHandler_Create_Unauthorized(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(NewHandler(&fakeService{}, nopLogger{})).ServeHTTP(rec,
		httptest.NewRequest(http.MethodPost, "/api/v1/sports/2/blocked-slots", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_List_PassesDate(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()
	newRouter(NewHandler(svc, nopLogger{})).ServeHTTP(rec,
		adminRequest(http.MethodGet, "/api/v1/sports/2/blocked-slots?date=2025-06-14", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.listDate)
	assert.Equal(t, "2025-06-14", *svc.listDate)
	assert.JSONEq(t, `{"blockedSlots":[]}`, rec.Body.String())
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "не найдена блокировка", err: blocking.ErrBlockedSlotNotFound, wantStatus: http.StatusNotFound},
		{name: "не найдена площадка", err: blocking.ErrSportNotFound, wantStatus: http.StatusNotFound},
		{name: "невалидные данные", err: fmt.Errorf("%w: end before start", blocking.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "внутренняя ошибка", err: blocking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newRouter(NewHandler(&fakeService{err: tt.err}, nopLogger{})).ServeHTTP(rec,
				adminRequest(http.MethodDelete, "/api/v1/blocked-slots/3", ""))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
