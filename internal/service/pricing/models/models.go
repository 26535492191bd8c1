package models

import (
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/types"
)

// CreatePricingRuleRequest запрос на создание правила ценообразования
type CreatePricingRuleRequest struct {
	Name          string            `json:"name"`
	Type          string            `json:"type"`      // override | time_of_day | weekend
	StartTime     types.TimeString  `json:"startTime"` // "18:00"
	EndTime       types.TimeString  `json:"endTime"`   // "22:00"
	Multiplier    *types.Multiplier `json:"multiplier,omitempty"`
	OverridePrice *int64            `json:"overridePrice,omitempty"`
	IsActive      *bool             `json:"isActive,omitempty"` // По умолчанию true
}

// ToDomainParams конвертирует запрос в параметры конструктора правила
func (r *CreatePricingRuleRequest) ToDomainParams(sportID int64) domain.PricingRuleParams {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return domain.PricingRuleParams{
		SportID:       sportID,
		Name:          r.Name,
		Type:          domain.RuleType(r.Type),
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Multiplier:    r.Multiplier,
		OverridePrice: r.OverridePrice,
		IsActive:      active,
	}
}

// SetActiveRequest запрос на включение/выключение правила
type SetActiveRequest struct {
	IsActive bool `json:"isActive"`
}

// PricingRuleResponse ответ с данными правила
type PricingRuleResponse struct {
	ID            int64             `json:"id"`
	SportID       int64             `json:"sportId"`
	Name          string            `json:"name"`
	Type          string            `json:"type"`
	StartTime     string            `json:"startTime"`
	EndTime       string            `json:"endTime"`
	Multiplier    *types.Multiplier `json:"multiplier"`
	OverridePrice *int64            `json:"overridePrice"`
	IsActive      bool              `json:"isActive"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// PricingRuleListResponse ответ со списком правил
type PricingRuleListResponse struct {
	Rules []PricingRuleResponse `json:"rules"`
}

// FromDomainPricingRule конвертирует domain модель в DTO
func FromDomainPricingRule(r *domain.PricingRule) *PricingRuleResponse {
	if r == nil {
		return nil
	}
	return &PricingRuleResponse{
		ID:            r.ID,
		SportID:       r.SportID,
		Name:          r.Name,
		Type:          string(r.Type),
		StartTime:     r.StartTime.String(),
		EndTime:       r.EndTime.String(),
		Multiplier:    r.Multiplier,
		OverridePrice: r.OverridePrice,
		IsActive:      r.IsActive,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FromDomainPricingRuleList конвертирует список domain моделей в DTO
func FromDomainPricingRuleList(rules []*domain.PricingRule) *PricingRuleListResponse {
	resp := &PricingRuleListResponse{Rules: make([]PricingRuleResponse, 0, len(rules))}
	for _, r := range rules {
		resp.Rules = append(resp.Rules, *FromDomainPricingRule(r))
	}
	return resp
}
