package create_sport

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ArenaBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ArenaBookingService/internal/service/sports"
	"github.com/m04kA/SMC-ArenaBookingService/internal/service/sports/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/sports
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSportRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sports - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sport, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, sports.ErrInvalidInput) {
			h.logger.Warn("POST /sports - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSport+": "+err.Error())
			return
		}
		h.logger.Error("POST /sports - Failed to create sport: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /sports - Sport created successfully: sport_id=%d", sport.ID)
	handlers.RespondJSON(w, http.StatusCreated, sport)
}
