package get_sports

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ArenaBookingService/internal/api/handlers"
)

const msgInvalidIncludeInactive = "некорректное значение includeInactive"

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

// Handle GET /api/v1/sports
// Query params: includeInactive (optional, bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activeOnly := true
	if raw := r.URL.Query().Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /sports - Invalid includeInactive: %v", err)
			handlers.RespondBadRequest(w, msgInvalidIncludeInactive)
			return
		}
		activeOnly = !includeInactive
	}

	result, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /sports - Failed to list sports: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sports - Sports retrieved successfully: count=%d", len(result.Sports))
	handlers.RespondJSON(w, http.StatusOK, result)
}
