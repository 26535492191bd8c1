package pricing_rules

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ArenaBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ArenaBookingService/internal/service/pricing"
	"github.com/m04kA/SMC-ArenaBookingService/internal/service/pricing/models"
)

const (
	msgInvalidSportID     = "некорректный ID площадки"
	msgInvalidRuleID      = "некорректный ID правила"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSportNotFound      = "площадка не найдена"
	msgRuleNotFound       = "правило цены не найдено"
	msgInvalidRule        = "некорректное правило цены"
)

// Handler управление правилами ценообразования (только для администраторов)
type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/sports/{sportId}/pricing-rules
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	sportID, err := handlers.PathInt64(r, "sportId")
	if err != nil {
		h.logger.Warn("POST /sports/{id}/pricing-rules - Invalid sport ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSportID)
		return
	}

	var req models.CreatePricingRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sports/{id}/pricing-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	rule, err := h.service.Create(r.Context(), sportID, &req)
	if err != nil {
		h.respondServiceError(w, "POST /sports/{id}/pricing-rules", err)
		return
	}

	h.logger.Info("POST /sports/{id}/pricing-rules - Rule created successfully: sport_id=%d, rule_id=%d, type=%s",
		sportID, rule.ID, rule.Type)
	handlers.RespondJSON(w, http.StatusCreated, rule)
}

// List GET /api/v1/sports/{sportId}/pricing-rules
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sportID, err := handlers.PathInt64(r, "sportId")
	if err != nil {
		h.logger.Warn("GET /sports/{id}/pricing-rules - Invalid sport ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSportID)
		return
	}

	result, err := h.service.ListBySport(r.Context(), sportID)
	if err != nil {
		h.respondServiceError(w, "GET /sports/{id}/pricing-rules", err)
		return
	}

	h.logger.Info("GET /sports/{id}/pricing-rules - Rules retrieved successfully: sport_id=%d, count=%d",
		sportID, len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// SetActive PATCH /api/v1/pricing-rules/{ruleId}/active
func (h *Handler) SetActive(w http.ResponseWriter, r *http.Request) {
	ruleID, err := handlers.PathInt64(r, "ruleId")
	if err != nil {
		h.logger.Warn("PATCH /pricing-rules/{id}/active - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	var req models.SetActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /pricing-rules/{id}/active - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	rule, err := h.service.SetActive(r.Context(), ruleID, req.IsActive)
	if err != nil {
		h.respondServiceError(w, "PATCH /pricing-rules/{id}/active", err)
		return
	}

	h.logger.Info("PATCH /pricing-rules/{id}/active - Rule updated successfully: rule_id=%d, is_active=%t",
		ruleID, rule.IsActive)
	handlers.RespondJSON(w, http.StatusOK, rule)
}

// Delete DELETE /api/v1/pricing-rules/{ruleId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ruleID, err := handlers.PathInt64(r, "ruleId")
	if err != nil {
		h.logger.Warn("DELETE /pricing-rules/{id} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	if err := h.service.Delete(r.Context(), ruleID); err != nil {
		h.respondServiceError(w, "DELETE /pricing-rules/{id}", err)
		return
	}

	h.logger.Info("DELETE /pricing-rules/{id} - Rule deleted successfully: rule_id=%d", ruleID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, pricing.ErrSportNotFound):
		h.logger.Warn("%s - Sport not found: %v", route, err)
		handlers.RespondNotFound(w, msgSportNotFound)

	case errors.Is(err, pricing.ErrPricingRuleNotFound):
		h.logger.Warn("%s - Rule not found: %v", route, err)
		handlers.RespondNotFound(w, msgRuleNotFound)

	case errors.Is(err, pricing.ErrInvalidInput):
		h.logger.Warn("%s - Validation failed: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRule+": "+err.Error())

	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
