package resolve_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
)

// SportRepository источник конфигурации площадки (fetchSport)
type SportRepository interface {
	GetByID(ctx context.Context, sportID int64) (*domain.Sport, error)
}

// BookingRepository источник бронирований (fetchBookings)
type BookingRepository interface {
	// GetActiveBySportAndDate возвращает неотмененные бронирования площадки на дату
	GetActiveBySportAndDate(ctx context.Context, sportID int64, date time.Time) ([]*domain.Booking, error)
}

// BlockedSlotRepository источник заблокированных интервалов (fetchBlockedSlots)
type BlockedSlotRepository interface {
	GetBySportAndDate(ctx context.Context, sportID int64, date time.Time) ([]*domain.BlockedSlot, error)
}

// PricingRuleRepository источник правил ценообразования (fetchPricingRules)
type PricingRuleRepository interface {
	// GetActiveBySport возвращает активные правила площадки
	GetActiveBySport(ctx context.Context, sportID int64) ([]*domain.PricingRule, error)
}

// Metrics счетчики расчета доступности
type Metrics interface {
	IncAvailabilityResolved(outcome string)
	IncPricingRuleSkipped(ruleType string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
