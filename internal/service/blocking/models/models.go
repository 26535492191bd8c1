package models

import (
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/types"
)

// CreateBlockedSlotRequest запрос на блокировку интервала
type CreateBlockedSlotRequest struct {
	Date      string           `json:"date"`      // "2025-06-14"
	StartTime types.TimeString `json:"startTime"` // "10:00"
	EndTime   types.TimeString `json:"endTime"`   // "12:00"
	Reason    *string          `json:"reason,omitempty"`
	CreatedBy int64            `json:"-"` // Заполняется из заголовка X-User-ID
}

// BlockedSlotResponse ответ с данными блокировки
type BlockedSlotResponse struct {
	ID        int64     `json:"id"`
	SportID   int64     `json:"sportId"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Reason    *string   `json:"reason"`
	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockedSlotListResponse ответ со списком блокировок
type BlockedSlotListResponse struct {
	BlockedSlots []BlockedSlotResponse `json:"blockedSlots"`
}

// FromDomainBlockedSlot конвертирует domain модель в DTO
func FromDomainBlockedSlot(b *domain.BlockedSlot) *BlockedSlotResponse {
	if b == nil {
		return nil
	}
	return &BlockedSlotResponse{
		ID:        b.ID,
		SportID:   b.SportID,
		Date:      b.Date.Format(domain.DateFormat),
		StartTime: b.StartTime.String(),
		EndTime:   b.EndTime.String(),
		Reason:    b.Reason,
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlockedSlotList конвертирует список domain моделей в DTO
func FromDomainBlockedSlotList(slots []*domain.BlockedSlot) *BlockedSlotListResponse {
	resp := &BlockedSlotListResponse{BlockedSlots: make([]BlockedSlotResponse, 0, len(slots))}
	for _, b := range slots {
		resp.BlockedSlots = append(resp.BlockedSlots, *FromDomainBlockedSlot(b))
	}
	return resp
}
