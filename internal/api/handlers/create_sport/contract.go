package create_sport

import (
	"context"

	"github.com/m04kA/SMC-ArenaBookingService/internal/service/sports/models"
)

type SportService interface {
	Create(ctx context.Context, req *models.CreateSportRequest) (*models.SportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
