package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	"github.com/m04kA/SMC-ArenaBookingService/internal/usecase/resolve_availability"
)

const (
	msgInvalidSportID      = "некорректный ID площадки"
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSportNotFound       = "площадка не найдена"
	msgInvalidSportConfig  = "некорректные настройки расписания площадки"
	msgInvalidRequestInput = "некорректные параметры запроса"
)

type Handler struct {
	useCase AvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase AvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sports/{sportId}/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sportID, err := handlers.PathInt64(r, "sportId")
	if err != nil {
		h.logger.Warn("GET /sports/{id}/availability - Invalid sport ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSportID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /sports/{id}/availability - Missing date: sport_id=%d", sportID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /sports/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &resolve_availability.Request{
		SportID: sportID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, resolve_availability.ErrSportNotFound):
			h.logger.Warn("GET /sports/{id}/availability - Sport not found: sport_id=%d", sportID)
			handlers.RespondNotFound(w, msgSportNotFound)

		case errors.Is(err, resolve_availability.ErrInvalidConfiguration):
			h.logger.Error("GET /sports/{id}/availability - Invalid sport configuration: sport_id=%d, error=%v", sportID, err)
			handlers.RespondUnprocessableEntity(w, msgInvalidSportConfig)

		case errors.Is(err, resolve_availability.ErrInvalidInput):
			h.logger.Warn("GET /sports/{id}/availability - Invalid input: sport_id=%d, error=%v", sportID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestInput)

		default:
			h.logger.Error("GET /sports/{id}/availability - Failed to resolve availability: sport_id=%d, date=%s, error=%v",
				sportID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sports/{id}/availability - Availability resolved: sport_id=%d, date=%s, slots_count=%d",
		sportID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
