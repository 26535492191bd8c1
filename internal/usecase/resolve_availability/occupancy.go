package resolve_availability

import (
	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
)

// applyOccupancy проставляет статус каждому слоту
//
// Приоритет: blocked > booked > available. Занятость определяется пересечением
// полуоткрытых интервалов, а не совпадением с сеткой: бронирование 10:30-11:30
// занимает оба часовых слота 10:00 и 11:00. Граничащие интервалы не пересекаются.
func applyOccupancy(slots []domain.Slot, bookings []*domain.Booking, blocked []*domain.BlockedSlot) []domain.Slot {
	result := make([]domain.Slot, len(slots))

	for i, slot := range slots {
		slot.Status = slotStatus(&slot, bookings, blocked)
		result[i] = slot
	}

	return result
}

func slotStatus(slot *domain.Slot, bookings []*domain.Booking, blocked []*domain.BlockedSlot) domain.SlotStatus {
	for _, b := range blocked {
		if b == nil {
			continue
		}
		if slot.Overlaps(b.StartTime, b.EndTime) {
			return domain.SlotBlocked
		}
	}

	for _, b := range bookings {
		// Отмененные бронирования слот не занимают
		if b == nil || !b.IsActive() {
			continue
		}
		if slot.Overlaps(b.StartTime, b.EndTime) {
			return domain.SlotBooked
		}
	}

	return domain.SlotAvailable
}
