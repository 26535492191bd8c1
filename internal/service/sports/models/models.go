package models

import (
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/types"
)

// Request модели

// CreateSportRequest запрос на создание площадки
type CreateSportRequest struct {
	Name                string           `json:"name"`
	BasePrice           int64            `json:"basePrice"`
	WeekendPrice        *int64           `json:"weekendPrice,omitempty"`
	OpenTime            types.TimeString `json:"openTime"`  // "08:00"
	CloseTime           types.TimeString `json:"closeTime"` // "22:00"
	SlotDurationMinutes int              `json:"slotDurationMinutes"`
	IsActive            *bool            `json:"isActive,omitempty"` // По умолчанию true
}

// ToDomainSport конвертирует request в domain модель
func (r *CreateSportRequest) ToDomainSport() *domain.Sport {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &domain.Sport{
		Name:                r.Name,
		BasePrice:           r.BasePrice,
		WeekendPrice:        r.WeekendPrice,
		OpenTime:            r.OpenTime,
		CloseTime:           r.CloseTime,
		SlotDurationMinutes: r.SlotDurationMinutes,
		IsActive:            active,
	}
}

// UpdateSportRequest запрос на обновление площадки
// Все поля опциональны - обновляются только переданные значения
type UpdateSportRequest struct {
	Name                *string           `json:"name,omitempty"`
	BasePrice           *int64            `json:"basePrice,omitempty"`
	WeekendPrice        *int64            `json:"weekendPrice,omitempty"`
	ClearWeekendPrice   bool              `json:"clearWeekendPrice,omitempty"`
	OpenTime            *types.TimeString `json:"openTime,omitempty"`
	CloseTime           *types.TimeString `json:"closeTime,omitempty"`
	SlotDurationMinutes *int              `json:"slotDurationMinutes,omitempty"`
	IsActive            *bool             `json:"isActive,omitempty"`
}

// Apply применяет изменения к площадке
func (r *UpdateSportRequest) Apply(s *domain.Sport) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.BasePrice != nil {
		s.BasePrice = *r.BasePrice
	}
	if r.WeekendPrice != nil {
		s.WeekendPrice = r.WeekendPrice
	}
	if r.ClearWeekendPrice {
		s.WeekendPrice = nil
	}
	if r.OpenTime != nil {
		s.OpenTime = *r.OpenTime
	}
	if r.CloseTime != nil {
		s.CloseTime = *r.CloseTime
	}
	if r.SlotDurationMinutes != nil {
		s.SlotDurationMinutes = *r.SlotDurationMinutes
	}
	if r.IsActive != nil {
		s.IsActive = *r.IsActive
	}
}

// Response модели

// SportResponse ответ с данными площадки
type SportResponse struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	BasePrice           int64     `json:"basePrice"`
	WeekendPrice        *int64    `json:"weekendPrice"`
	OpenTime            string    `json:"openTime"`
	CloseTime           string    `json:"closeTime"`
	SlotDurationMinutes int       `json:"slotDurationMinutes"`
	IsActive            bool      `json:"isActive"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// SportListResponse ответ со списком площадок
type SportListResponse struct {
	Sports []SportResponse `json:"sports"`
}

// FromDomainSport конвертирует domain модель в DTO
func FromDomainSport(s *domain.Sport) *SportResponse {
	if s == nil {
		return nil
	}
	return &SportResponse{
		ID:                  s.ID,
		Name:                s.Name,
		BasePrice:           s.BasePrice,
		WeekendPrice:        s.WeekendPrice,
		OpenTime:            s.OpenTime.String(),
		CloseTime:           s.CloseTime.String(),
		SlotDurationMinutes: s.SlotDurationMinutes,
		IsActive:            s.IsActive,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

// FromDomainSportList конвертирует список domain моделей в DTO
func FromDomainSportList(sports []*domain.Sport) *SportListResponse {
	resp := &SportListResponse{Sports: make([]SportResponse, 0, len(sports))}
	for _, s := range sports {
		resp.Sports = append(resp.Sports, *FromDomainSport(s))
	}
	return resp
}
