package get_sports

import (
	"context"

	"github.com/m04kA/SMC-ArenaBookingService/internal/service/sports/models"
)

type SportService interface {
	List(ctx context.Context, activeOnly bool) (*models.SportListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
