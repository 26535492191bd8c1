package get_availability

import (
	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	"github.com/m04kA/SMC-ArenaBookingService/internal/usecase/resolve_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	SportID int64  `json:"sportId"`
	Date    string `json:"date"`
	Slots   []Slot `json:"slots"`
}

// Slot слот сетки со статусом и ценой (null для занятых)
type Slot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
	Price     *int64 `json:"price"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolve_availability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Status:    string(slot.Status),
			Price:     slot.Price,
		}
	}

	return &AvailabilityResponse{
		SportID: resp.SportID,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}
