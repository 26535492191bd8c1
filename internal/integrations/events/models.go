package events

import (
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
)

// Ключи маршрутизации событий
const (
	RoutingKeyBookingCreated   = "booking.created"
	RoutingKeyBookingConfirmed = "booking.confirmed"
	RoutingKeyBookingCancelled = "booking.cancelled"
	RoutingKeyBookingExpired   = "booking.expired"
)

// BookingEvent тело события о бронировании
type BookingEvent struct {
	Event              string    `json:"event"`
	BookingID          int64     `json:"bookingId"`
	UserID             int64     `json:"userId"`
	SportID            int64     `json:"sportId"`
	Date               string    `json:"date"`
	StartTime          string    `json:"startTime"`
	EndTime            string    `json:"endTime"`
	Status             string    `json:"status"`
	Price              int64     `json:"price"`
	CancellationReason *string   `json:"cancellationReason,omitempty"`
	OccurredAt         time.Time `json:"occurredAt"`
}

func newBookingEvent(event string, b *domain.Booking, now time.Time) BookingEvent {
	return BookingEvent{
		Event:              event,
		BookingID:          b.ID,
		UserID:             b.UserID,
		SportID:            b.SportID,
		Date:               b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		Status:             string(b.Status),
		Price:              b.Price,
		CancellationReason: b.CancellationReason,
		OccurredAt:         now,
	}
}
