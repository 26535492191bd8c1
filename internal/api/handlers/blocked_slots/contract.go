package blocked_slots

import (
	"context"

	"github.com/m04kA/SMC-ArenaBookingService/internal/service/blocking/models"
)

type BlockingService interface {
	Create(ctx context.Context, sportID int64, req *models.CreateBlockedSlotRequest) (*models.BlockedSlotResponse, error)
	List(ctx context.Context, sportID int64, date *string) (*models.BlockedSlotListResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
