package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64            // ID пользователя
	SportID   int64            // ID площадки
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	UserID      int64
	SportID     int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      string
	Price       int64 // Цена, рассчитанная на момент бронирования
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
