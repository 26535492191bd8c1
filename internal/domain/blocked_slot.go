package domain

import (
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/pkg/types"
)

// BlockedSlot интервал, закрытый администратором
// Занимает слот независимо от бронирований
type BlockedSlot struct {
	ID        int64
	SportID   int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Reason    *string
	CreatedBy int64
	CreatedAt time.Time
}
