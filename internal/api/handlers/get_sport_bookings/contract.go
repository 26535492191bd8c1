package get_sport_bookings

import (
	"context"

	"github.com/m04kA/SMC-ArenaBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetSportBookings(ctx context.Context, req *models.GetSportBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
