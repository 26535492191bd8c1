package resolve_availability

import (
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
)

// Request модель запроса на расчет доступности
type Request struct {
	SportID int64     // ID площадки
	Date    time.Time // Календарная дата (время игнорируется)
}

// Response упорядоченный по времени начала список слотов
type Response struct {
	SportID int64
	Date    time.Time
	Slots   []domain.Slot
}

// Outcome метки результата расчета для метрик
const (
	outcomeOK            = "ok"
	outcomeInvalidInput  = "invalid_input"
	outcomeNotFound      = "not_found"
	outcomeInvalidConfig = "invalid_configuration"
	outcomeError         = "error"
)
