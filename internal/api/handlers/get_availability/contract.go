package get_availability

import (
	"context"

	"github.com/m04kA/SMC-ArenaBookingService/internal/usecase/resolve_availability"
)

type AvailabilityUseCase interface {
	Execute(ctx context.Context, req *resolve_availability.Request) (*resolve_availability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
