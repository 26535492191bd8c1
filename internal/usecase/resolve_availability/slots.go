package resolve_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/types"
)

// generateSlots строит сетку слотов [open, close) с шагом slotDuration
// Слоты идут подряд, без пересечений, по возрастанию времени начала
func generateSlots(sport *domain.Sport, date time.Time) ([]domain.Slot, error) {
	if err := sport.ValidateSchedule(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	open := sport.OpenTime.Minutes()
	closeAt := sport.CloseTime.Minutes()
	step := sport.SlotDurationMinutes

	slots := make([]domain.Slot, 0, (closeAt-open)/step)
	for start := open; start < closeAt; start += step {
		startTime, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		endTime, err := types.NewTimeStringFromMinutes(start + step)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}

		slots = append(slots, domain.Slot{
			SportID:   sport.ID,
			Date:      date,
			StartTime: startTime,
			EndTime:   endTime,
		})
	}

	return slots, nil
}
