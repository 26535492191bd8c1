package events

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
)

// Client публикует события о бронированиях
// Ошибки публикации только логируются: событие не должно ломать основной запрос
type Client struct {
	publisher Publisher
	timeout   time.Duration
	log       Logger
	now       func() time.Time
}

// NewClient создает новый экземпляр клиента событий
func NewClient(publisher Publisher, timeout time.Duration, log Logger) *Client {
	return &Client{
		publisher: publisher,
		timeout:   timeout,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// BookingCreated публикует booking.created
func (c *Client) BookingCreated(ctx context.Context, booking *domain.Booking) {
	c.publish(ctx, RoutingKeyBookingCreated, booking)
}

// BookingConfirmed публикует booking.confirmed
func (c *Client) BookingConfirmed(ctx context.Context, booking *domain.Booking) {
	c.publish(ctx, RoutingKeyBookingConfirmed, booking)
}

// BookingCancelled публикует booking.cancelled
func (c *Client) BookingCancelled(ctx context.Context, booking *domain.Booking) {
	c.publish(ctx, RoutingKeyBookingCancelled, booking)
}

// BookingExpired публикует booking.expired
func (c *Client) BookingExpired(ctx context.Context, booking *domain.Booking) {
	c.publish(ctx, RoutingKeyBookingExpired, booking)
}

func (c *Client) publish(ctx context.Context, key string, booking *domain.Booking) {
	if booking == nil {
		return
	}

	// Событие публикуется и после отмены контекста запроса
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	if err := c.publisher.PublishJSON(pubCtx, key, newBookingEvent(key, booking, c.now())); err != nil {
		c.log.Error("publish: failed to publish %s for booking id=%d: %v", key, booking.ID, err)
		return
	}
	c.log.Info("publish: %s published for booking id=%d", key, booking.ID)
}

// Noop публикатор, который ничего не отправляет (события выключены)
type Noop struct{}

func (Noop) BookingCreated(context.Context, *domain.Booking)   {}
func (Noop) BookingConfirmed(context.Context, *domain.Booking) {}
func (Noop) BookingCancelled(context.Context, *domain.Booking) {}
func (Noop) BookingExpired(context.Context, *domain.Booking)   {}
