package blocking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
)

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	Create(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error)
	GetBySport(ctx context.Context, sportID int64, date *time.Time) ([]*domain.BlockedSlot, error)
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
