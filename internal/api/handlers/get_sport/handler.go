package get_sport

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ArenaBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ArenaBookingService/internal/service/sports"
)

const (
	msgInvalidSportID = "некорректный ID площадки"
	msgSportNotFound  = "площадка не найдена"
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

// Handle GET /api/v1/sports/{sportId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sportID, err := handlers.PathInt64(r, "sportId")
	if err != nil {
		h.logger.Warn("GET /sports/{id} - Invalid sport ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSportID)
		return
	}

	sport, err := h.service.GetByID(r.Context(), sportID)
	if err != nil {
		if errors.Is(err, sports.ErrSportNotFound) {
			h.logger.Warn("GET /sports/{id} - Sport not found: sport_id=%d", sportID)
			handlers.RespondNotFound(w, msgSportNotFound)
			return
		}
		h.logger.Error("GET /sports/{id} - Failed to get sport: sport_id=%d, error=%v", sportID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sports/{id} - Sport retrieved successfully: sport_id=%d", sportID)
	handlers.RespondJSON(w, http.StatusOK, sport)
}
