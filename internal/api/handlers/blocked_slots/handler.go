package blocked_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ArenaBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ArenaBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-ArenaBookingService/internal/service/blocking"
	"github.com/m04kA/SMC-ArenaBookingService/internal/service/blocking/models"
)

const (
	msgInvalidSportID       = "некорректный ID площадки"
	msgInvalidBlockedSlotID = "некорректный ID блокировки"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgUnauthorized         = "требуется авторизация"
	msgSportNotFound        = "площадка не найдена"
	msgBlockedSlotNotFound  = "блокировка не найдена"
	msgInvalidBlockedSlot   = "некорректные параметры блокировки"
)

// Handler управление блокировками слотов (только для администраторов)
type Handler struct {
	service BlockingService
	logger  Logger
}

func NewHandler(service BlockingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/sports/{sportId}/blocked-slots
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /sports/{id}/blocked-slots - Unauthorized access attempt")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	sportID, err := handlers.PathInt64(r, "sportId")
	if err != nil {
		h.logger.Warn("POST /sports/{id}/blocked-slots - Invalid sport ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSportID)
		return
	}

	var req models.CreateBlockedSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sports/{id}/blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.CreatedBy = adminID

	slot, err := h.service.Create(r.Context(), sportID, &req)
	if err != nil {
		h.respondServiceError(w, "POST /sports/{id}/blocked-slots", err)
		return
	}

	h.logger.Info("POST /sports/{id}/blocked-slots - Slot blocked successfully: sport_id=%d, blocked_slot_id=%d, date=%s, %s-%s",
		sportID, slot.ID, slot.Date, slot.StartTime, slot.EndTime)
	handlers.RespondJSON(w, http.StatusCreated, slot)
}

// List GET /api/v1/sports/{sportId}/blocked-slots
// Query params: date (optional, YYYY-MM-DD)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sportID, err := handlers.PathInt64(r, "sportId")
	if err != nil {
		h.logger.Warn("GET /sports/{id}/blocked-slots - Invalid sport ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSportID)
		return
	}

	var date *string
	if d := r.URL.Query().Get("date"); d != "" {
		date = &d
	}

	result, err := h.service.List(r.Context(), sportID, date)
	if err != nil {
		h.respondServiceError(w, "GET /sports/{id}/blocked-slots", err)
		return
	}

	h.logger.Info("GET /sports/{id}/blocked-slots - Blocked slots retrieved successfully: sport_id=%d, count=%d",
		sportID, len(result.BlockedSlots))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/blocked-slots/{blockedSlotId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "blockedSlotId")
	if err != nil {
		h.logger.Warn("DELETE /blocked-slots/{id} - Invalid blocked slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockedSlotID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /blocked-slots/{id}", err)
		return
	}

	h.logger.Info("DELETE /blocked-slots/{id} - Blocked slot deleted successfully: blocked_slot_id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, blocking.ErrSportNotFound):
		h.logger.Warn("%s - Sport not found: %v", route, err)
		handlers.RespondNotFound(w, msgSportNotFound)

	case errors.Is(err, blocking.ErrBlockedSlotNotFound):
		h.logger.Warn("%s - Blocked slot not found: %v", route, err)
		handlers.RespondNotFound(w, msgBlockedSlotNotFound)

	case errors.Is(err, blocking.ErrInvalidInput):
		h.logger.Warn("%s - Validation failed: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidBlockedSlot+": "+err.Error())

	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
