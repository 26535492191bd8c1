package sports

import (
	"context"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
)

// SportRepository интерфейс репозитория площадок
type SportRepository interface {
	Create(ctx context.Context, sport *domain.Sport) (*domain.Sport, error)
	GetByID(ctx context.Context, id int64) (*domain.Sport, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Sport, error)
	Update(ctx context.Context, sport *domain.Sport) (*domain.Sport, error)
}

// SportCache кэш площадок, который нужно сбрасывать после изменений
type SportCache interface {
	Invalidate(ctx context.Context, sportID int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
