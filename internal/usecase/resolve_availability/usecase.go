package resolve_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	sportRepo "github.com/m04kA/SMC-ArenaBookingService/internal/infra/storage/sport"
)

// UseCase расчет доступности и цен слотов площадки на дату
// Не хранит состояние между вызовами, источники данных передаются в конструктор
type UseCase struct {
	sportRepo       SportRepository
	bookingRepo     BookingRepository
	blockedSlotRepo BlockedSlotRepository
	pricingRuleRepo PricingRuleRepository
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sportRepo SportRepository,
	bookingRepo BookingRepository,
	blockedSlotRepo BlockedSlotRepository,
	pricingRuleRepo PricingRuleRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		sportRepo:       sportRepo,
		bookingRepo:     bookingRepo,
		blockedSlotRepo: blockedSlotRepo,
		pricingRuleRepo: pricingRuleRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет расчет доступности (resolveAvailability)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	uc.observe(err)
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveAvailability: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	dateStr := date.Format(domain.DateFormat)

	// 2. Получаем площадку
	sport, err := uc.sportRepo.GetByID(ctx, req.SportID)
	if err != nil {
		if errors.Is(err, sportRepo.ErrSportNotFound) {
			uc.logger.Warn("ResolveAvailability: sport id=%d not found", req.SportID)
			return nil, ErrSportNotFound
		}
		uc.logger.Error("ResolveAvailability: failed to get sport id=%d: %v", req.SportID, err)
		return nil, fmt.Errorf("%w: failed to get sport: %v", ErrInternal, err)
	}
	if !sport.IsActive {
		uc.logger.Warn("ResolveAvailability: sport id=%d is inactive", req.SportID)
		return nil, ErrSportNotFound
	}

	// 3. Строим сетку слотов
	slots, err := generateSlots(sport, date)
	if err != nil {
		uc.logger.Error("ResolveAvailability: sport id=%d has invalid schedule: %v", sport.ID, err)
		return nil, err
	}

	// 4. Получаем бронирования и блокировки на дату
	bookings, err := uc.bookingRepo.GetActiveBySportAndDate(ctx, sport.ID, date)
	if err != nil {
		uc.logger.Error("ResolveAvailability: failed to get bookings for sport=%d, date=%s: %v", sport.ID, dateStr, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	blocked, err := uc.blockedSlotRepo.GetBySportAndDate(ctx, sport.ID, date)
	if err != nil {
		uc.logger.Error("ResolveAvailability: failed to get blocked slots for sport=%d, date=%s: %v", sport.ID, dateStr, err)
		return nil, fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
	}

	// 5. Проставляем занятость
	slots = applyOccupancy(slots, bookings, blocked)

	// 6. Получаем правила и рассчитываем цены
	rules, err := uc.pricingRuleRepo.GetActiveBySport(ctx, sport.ID)
	if err != nil {
		uc.logger.Error("ResolveAvailability: failed to get pricing rules for sport=%d: %v", sport.ID, err)
		return nil, fmt.Errorf("%w: failed to get pricing rules: %v", ErrInternal, err)
	}

	resolver, skipped := newPriceResolver(sport, date, rules)
	uc.reportSkipped(sport.ID, skipped)

	slots = resolver.apply(slots)
	uc.reportSkipped(sport.ID, resolver.failed)

	uc.logger.Info("ResolveAvailability: resolved %d slots for sport=%d, date=%s (bookings=%d, blocked=%d, rules=%d)",
		len(slots), sport.ID, dateStr, len(bookings), len(blocked), resolver.appliedRules())

	return &Response{
		SportID: sport.ID,
		Date:    date,
		Slots:   slots,
	}, nil
}

// reportSkipped логирует отброшенные правила и учитывает их в метриках
func (uc *UseCase) reportSkipped(sportID int64, skipped []skippedRule) {
	for _, s := range skipped {
		uc.logger.Warn("ResolveAvailability: skipping pricing rule id=%d (%s) for sport=%d: %v",
			s.rule.ID, s.rule.Type, sportID, s.err)
		uc.metrics.IncPricingRuleSkipped(ruleTypeLabel(s.rule.Type))
	}
}

// ruleTypeLabel ограничивает набор значений метки известными типами
func ruleTypeLabel(t domain.RuleType) string {
	if domain.IsValidRuleType(t) {
		return string(t)
	}
	return "unknown"
}

func (uc *UseCase) observe(err error) {
	outcome := outcomeOK
	switch {
	case err == nil:
	case errors.Is(err, ErrInvalidInput):
		outcome = outcomeInvalidInput
	case errors.Is(err, ErrSportNotFound):
		outcome = outcomeNotFound
	case errors.Is(err, ErrInvalidConfiguration):
		outcome = outcomeInvalidConfig
	default:
		outcome = outcomeError
	}
	uc.metrics.IncAvailabilityResolved(outcome)
}
