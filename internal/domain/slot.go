package domain

import (
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/pkg/types"
)

// SlotStatus статус занятости слота
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotBlocked   SlotStatus = "blocked"
)

// Slot временной слот площадки на конкретную дату
// Создается заново при каждом расчете и не изменяется после построения
type Slot struct {
	SportID   int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    SlotStatus
	Price     *int64 // Заполняется только для свободных слотов
}

// IsAvailable возвращает true, если слот можно забронировать
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

// Overlaps проверяет пересечение слота с полуоткрытым интервалом [start, end)
func (s *Slot) Overlaps(start, end types.TimeString) bool {
	return types.RangesOverlap(s.StartTime, s.EndTime, start, end)
}
