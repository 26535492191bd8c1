package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	pricingRuleRepo "github.com/m04kA/SMC-ArenaBookingService/internal/infra/storage/pricingrule"
	sportRepo "github.com/m04kA/SMC-ArenaBookingService/internal/infra/storage/sport"
	"github.com/m04kA/SMC-ArenaBookingService/internal/service/pricing/models"
)

// Service сервис управления правилами ценообразования
type Service struct {
	ruleRepo  PricingRuleRepository
	sportRepo SportRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса правил
func NewService(ruleRepo PricingRuleRepository, sportRepo SportRepository, logger Logger) *Service {
	return &Service{
		ruleRepo:  ruleRepo,
		sportRepo: sportRepo,
		logger:    logger,
	}
}

// Create создает правило для площадки
// Обязательные поля проверяются конструктором domain.NewPricingRule в зависимости от типа
func (s *Service) Create(ctx context.Context, sportID int64, req *models.CreatePricingRuleRequest) (*models.PricingRuleResponse, error) {
	s.logger.Info("Create: creating pricing rule for sport id=%d, type=%s", sportID, req.Type)

	// 1. Проверяем площадку
	if err := s.ensureSport(ctx, "Create", sportID); err != nil {
		return nil, err
	}

	// 2. Собираем правило
	rule, err := domain.NewPricingRule(req.ToDomainParams(sportID))
	if err != nil {
		s.logger.Warn("Create: invalid pricing rule for sport id=%d: %v", sportID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Сохраняем
	created, err := s.ruleRepo.Create(ctx, rule)
	if err != nil {
		s.logger.Error("Create: repository error for sport id=%d: %v", sportID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created pricing rule id=%d for sport id=%d", created.ID, sportID)
	return models.FromDomainPricingRule(created), nil
}

// ListBySport возвращает все правила площадки, включая выключенные
func (s *Service) ListBySport(ctx context.Context, sportID int64) (*models.PricingRuleListResponse, error) {
	if err := s.ensureSport(ctx, "ListBySport", sportID); err != nil {
		return nil, err
	}

	rules, err := s.ruleRepo.GetBySport(ctx, sportID)
	if err != nil {
		s.logger.Error("ListBySport: repository error for sport id=%d: %v", sportID, err)
		return nil, fmt.Errorf("%w: ListBySport - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPricingRuleList(rules), nil
}

// SetActive включает или выключает правило
func (s *Service) SetActive(ctx context.Context, ruleID int64, active bool) (*models.PricingRuleResponse, error) {
	s.logger.Info("SetActive: rule id=%d, active=%t", ruleID, active)

	if err := s.ruleRepo.SetActive(ctx, ruleID, active); err != nil {
		return nil, s.mapRuleError("SetActive", ruleID, err)
	}

	rule, err := s.ruleRepo.GetByID(ctx, ruleID)
	if err != nil {
		return nil, s.mapRuleError("SetActive", ruleID, err)
	}

	return models.FromDomainPricingRule(rule), nil
}

// Delete удаляет правило
func (s *Service) Delete(ctx context.Context, ruleID int64) error {
	s.logger.Info("Delete: deleting pricing rule id=%d", ruleID)

	if err := s.ruleRepo.Delete(ctx, ruleID); err != nil {
		return s.mapRuleError("Delete", ruleID, err)
	}

	s.logger.Info("Delete: successfully deleted pricing rule id=%d", ruleID)
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

func (s *Service) mapRuleError(method string, ruleID int64, err error) error {
	if errors.Is(err, pricingRuleRepo.ErrPricingRuleNotFound) {
		s.logger.Warn("%s: pricing rule id=%d not found", method, ruleID)
		return ErrPricingRuleNotFound
	}
	s.logger.Error("%s: repository error for rule id=%d: %v", method, ruleID, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
}
