package update_sport

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ArenaBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ArenaBookingService/internal/service/sports"
	"github.com/m04kA/SMC-ArenaBookingService/internal/service/sports/models"
)

const (
	msgInvalidSportID     = "некорректный ID площадки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSportNotFound      = "площадка не найдена"
	msgInvalidSport       = "некорректные параметры площадки"
)

type Handler struct {
	service SportService
	logger  Logger
}

func NewHandler(service SportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/sports/{sportId}
// Обновляются только переданные поля
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sportID, err := handlers.PathInt64(r, "sportId")
	if err != nil {
		h.logger.Warn("PUT /sports/{id} - Invalid sport ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSportID)
		return
	}

	var req models.UpdateSportRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sports/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sport, err := h.service.Update(r.Context(), sportID, &req)
	if err != nil {
		switch {
		case errors.Is(err, sports.ErrSportNotFound):
			h.logger.Warn("PUT /sports/{id} - Sport not found: sport_id=%d", sportID)
			handlers.RespondNotFound(w, msgSportNotFound)

		case errors.Is(err, sports.ErrInvalidInput):
			h.logger.Warn("PUT /sports/{id} - Validation failed: sport_id=%d, error=%v", sportID, err)
			handlers.RespondBadRequest(w, msgInvalidSport+": "+err.Error())

		default:
			h.logger.Error("PUT /sports/{id} - Failed to update sport: sport_id=%d, error=%v", sportID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sports/{id} - Sport updated successfully: sport_id=%d", sportID)
	handlers.RespondJSON(w, http.StatusOK, sport)
}
