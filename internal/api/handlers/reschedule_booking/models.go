package reschedule_booking

import (
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	"github.com/m04kA/SMC-ArenaBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	Date      string `json:"date"`      // "2025-06-15"
	StartTime string `json:"startTime"` // "19:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RescheduleBookingRequest) ToServiceRequest(actor models.Actor) (*models.RescheduleBookingRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &models.RescheduleBookingRequest{
		Actor:     actor,
		Date:      date,
		StartTime: startTime,
	}, nil
}
