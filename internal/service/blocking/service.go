package blocking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	blockedSlotRepo "github.com/m04kA/SMC-ArenaBookingService/internal/infra/storage/blockedslot"
	sportRepo "github.com/m04kA/SMC-ArenaBookingService/internal/infra/storage/sport"
	"github.com/m04kA/SMC-ArenaBookingService/internal/service/blocking/models"
)

// Service сервис блокировки интервалов администратором
type Service struct {
	blockedSlotRepo BlockedSlotRepository
	sportRepo       SportRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blockedSlotRepo BlockedSlotRepository, sportRepo SportRepository, logger Logger) *Service {
	return &Service{
		blockedSlotRepo: blockedSlotRepo,
		sportRepo:       sportRepo,
		logger:          logger,
	}
}

// Create блокирует интервал на дату
// Интервал может не совпадать с сеткой слотов: занятыми считаются все пересекающиеся слоты
func (s *Service) Create(ctx context.Context, sportID int64, req *models.CreateBlockedSlotRequest) (*models.BlockedSlotResponse, error) {
	s.logger.Info("Create: blocking %s %s-%s for sport id=%d", req.Date, req.StartTime, req.EndTime, sportID)

	// 1. Валидация
	slot, err := buildBlockedSlot(sportID, req)
	if err != nil {
		s.logger.Warn("Create: validation failed for sport id=%d: %v", sportID, err)
		return nil, err
	}

	// 2. Проверяем площадку
	if err := s.ensureSport(ctx, "Create", sportID); err != nil {
		return nil, err
	}

	// 3. Сохраняем
	created, err := s.blockedSlotRepo.Create(ctx, slot)
	if err != nil {
		s.logger.Error("Create: repository error for sport id=%d: %v", sportID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created blocked slot id=%d for sport id=%d", created.ID, sportID)
	return models.FromDomainBlockedSlot(created), nil
}

// List возвращает блокировки площадки, при заданной дате только на эту дату
func (s *Service) List(ctx context.Context, sportID int64, date *string) (*models.BlockedSlotListResponse, error) {
	var filterDate *time.Time
	if date != nil && *date != "" {
		parsed, err := time.Parse(domain.DateFormat, *date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
		}
		filterDate = &parsed
	}

	if err := s.ensureSport(ctx, "List", sportID); err != nil {
		return nil, err
	}

	slots, err := s.blockedSlotRepo.GetBySport(ctx, sportID, filterDate)
	if err != nil {
		s.logger.Error("List: repository error for sport id=%d: %v", sportID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedSlotList(slots), nil
}

// Delete снимает блокировку
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting blocked slot id=%d", id)

	if err := s.blockedSlotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockedSlotRepo.ErrBlockedSlotNotFound) {
			s.logger.Warn("Delete: blocked slot id=%d not found", id)
			return ErrBlockedSlotNotFound
		}
		s.logger.Error("Delete: repository error for blocked slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted blocked slot id=%d", id)
	return nil
}

func (s *Service) ensureSport(ctx context.Context, method string, sportID int64) error {
	if sportID <= 0 {
		return fmt.Errorf("%w: sport id must be positive", ErrInvalidInput)
	}

	_, err := s.sportRepo.GetByID(ctx, sportID)
	if err != nil {
		if errors.Is(err, sportRepo.ErrSportNotFound) {
			s.logger.Warn("%s: sport id=%d not found", method, sportID)
			return ErrSportNotFound
		}
		s.logger.Error("%s: failed to get sport id=%d: %v", method, sportID, err)
		return fmt.Errorf("%w: %s - get sport: %v", ErrInternal, method, err)
	}
	return nil
}

func buildBlockedSlot(sportID int64, req *models.CreateBlockedSlotRequest) (*domain.BlockedSlot, error) {
	if req.Date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: end time: %v", ErrInvalidInput, err)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return nil, fmt.Errorf("%w: end time must be after start time", ErrInvalidInput)
	}

	var reason *string
	if req.Reason != nil {
		trimmed := strings.TrimSpace(*req.Reason)
		if len(trimmed) > domain.MaxBlockReasonLength {
			return nil, fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxBlockReasonLength)
		}
		if trimmed != "" {
			reason = &trimmed
		}
	}

	return &domain.BlockedSlot{
		SportID:   sportID,
		Date:      domain.DateOnly(date),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    reason,
		CreatedBy: req.CreatedBy,
	}, nil
}
