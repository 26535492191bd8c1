package sports

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	sportRepo "github.com/m04kA/SMC-ArenaBookingService/internal/infra/storage/sport"
	"github.com/m04kA/SMC-ArenaBookingService/internal/service/sports/models"
)

// Service сервис каталога площадок
type Service struct {
	sportRepo SportRepository
	cache     SportCache
	logger    Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(sportRepo SportRepository, cache SportCache, logger Logger) *Service {
	return &Service{
		sportRepo: sportRepo,
		cache:     cache,
		logger:    logger,
	}
}

// Create создает площадку
func (s *Service) Create(ctx context.Context, req *models.CreateSportRequest) (*models.SportResponse, error) {
	s.logger.Info("Create: creating sport name=%q", req.Name)

	sport := req.ToDomainSport()
	sport.Name = strings.TrimSpace(sport.Name)
	if err := validateSport(sport); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.sportRepo.Create(ctx, sport)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created sport id=%d", created.ID)
	return models.FromDomainSport(created), nil
}

// GetByID получает площадку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SportResponse, error) {
	sport, err := s.getSport(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSport(sport), nil
}

// List получает список площадок
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.SportListResponse, error) {
	sports, err := s.sportRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d sports (activeOnly=%t)", len(sports), activeOnly)
	return models.FromDomainSportList(sports), nil
}

// Update частично обновляет площадку и сбрасывает её кэш
// Новые часы работы и длительность слота должны давать корректную сетку
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateSportRequest) (*models.SportResponse, error) {
	s.logger.Info("Update: updating sport id=%d", id)

	sport, err := s.getSport(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	req.Apply(sport)
	sport.Name = strings.TrimSpace(sport.Name)
	if err := validateSport(sport); err != nil {
		s.logger.Warn("Update: validation failed for sport id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.sportRepo.Update(ctx, sport)
	if err != nil {
		if errors.Is(err, sportRepo.ErrSportNotFound) {
			return nil, ErrSportNotFound
		}
		s.logger.Error("Update: repository error for sport id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.cache.Invalidate(ctx, id)

	s.logger.Info("Update: successfully updated sport id=%d", id)
	return models.FromDomainSport(updated), nil
}

func (s *Service) getSport(ctx context.Context, method string, id int64) (*domain.Sport, error) {
	sport, err := s.sportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sportRepo.ErrSportNotFound) {
			s.logger.Warn("%s: sport id=%d not found", method, id)
			return nil, ErrSportNotFound
		}
		s.logger.Error("%s: repository error for sport id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return sport, nil
}

// validateSport проверяет бизнес-ограничения площадки
func validateSport(sport *domain.Sport) error {
	if sport.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if sport.BasePrice < 0 {
		return fmt.Errorf("%w: base price must not be negative", ErrInvalidInput)
	}
	if sport.WeekendPrice != nil && *sport.WeekendPrice < 0 {
		return fmt.Errorf("%w: weekend price must not be negative", ErrInvalidInput)
	}
	if sport.SlotDurationMinutes < domain.MinSlotDurationMinutes || sport.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if err := sport.ValidateSchedule(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
