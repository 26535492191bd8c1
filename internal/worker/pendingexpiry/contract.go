package pendingexpiry

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория для отмены просроченных бронирований
type BookingRepository interface {
	ExpirePending(ctx context.Context, createdBefore time.Time, reason string) ([]*domain.Booking, error)
}

// EventPublisher публикация событий об истекших бронированиях
type EventPublisher interface {
	BookingExpired(ctx context.Context, booking *domain.Booking)
}

// Metrics метрики задачи
type Metrics interface {
	AddBookingsExpired(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
