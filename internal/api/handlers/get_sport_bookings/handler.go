package get_sport_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	"github.com/m04kA/SMC-ArenaBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-ArenaBookingService/internal/service/bookings/models"
)

const (
	msgInvalidSportID         = "некорректный ID площадки"
	msgInvalidDate            = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidIncludeInactive = "некорректное значение includeInactive"
	msgInvalidFilter          = "некорректный фильтр"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sports/{sportId}/bookings
// Query params: date (optional), status (optional), includeInactive (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sportID, err := handlers.PathInt64(r, "sportId")
	if err != nil {
		h.logger.Warn("GET /sports/{id}/bookings - Invalid sport ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSportID)
		return
	}

	query := r.URL.Query()
	serviceReq := &models.GetSportBookingsRequest{SportID: sportID}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /sports/{id}/bookings - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		serviceReq.Date = &date
	}

	if status := query.Get("status"); status != "" {
		serviceReq.Status = &status
	}

	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /sports/{id}/bookings - Invalid includeInactive: %v", err)
			handlers.RespondBadRequest(w, msgInvalidIncludeInactive)
			return
		}
		serviceReq.IncludeInactive = includeInactive
	}

	result, err := h.service.GetSportBookings(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /sports/{id}/bookings - Invalid filter: sport_id=%d, error=%v", sportID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /sports/{id}/bookings - Failed to get bookings: sport_id=%d, error=%v", sportID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sports/{id}/bookings - Bookings retrieved successfully: sport_id=%d, count=%d",
		sportID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
