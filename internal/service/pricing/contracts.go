package pricing

import (
	"context"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
)

// PricingRuleRepository интерфейс репозитория правил ценообразования
type PricingRuleRepository interface {
	Create(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error)
	GetByID(ctx context.Context, id int64) (*domain.PricingRule, error)
	GetBySport(ctx context.Context, sportID int64) ([]*domain.PricingRule, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

// SportRepository интерфейс для проверки существования площадки
type SportRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Sport, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
