package resolve_availability

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/ptr"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/types"
)

// priceResolver рассчитывает эффективную цену свободных слотов
type priceResolver struct {
	sport     *domain.Sport
	date      time.Time
	isWeekend bool
	rules     map[domain.RuleType][]*domain.PricingRule

	failed    []skippedRule
	failedIDs map[int64]struct{}
}

// newPriceResolver отбирает корректные правила и упорядочивает их внутри типа
// Некорректные правила возвращаются отдельно, чтобы вызывающий мог их залогировать
func newPriceResolver(
	sport *domain.Sport,
	date time.Time,
	rules []*domain.PricingRule,
) (*priceResolver, []skippedRule) {
	byType := make(map[domain.RuleType][]*domain.PricingRule, len(domain.RulePrecedence))
	var skipped []skippedRule

	for _, rule := range rules {
		if rule == nil || !rule.IsActive {
			continue
		}
		if err := rule.Validate(); err != nil {
			skipped = append(skipped, skippedRule{rule: rule, err: err})
			continue
		}
		byType[rule.Type] = append(byType[rule.Type], rule)
	}

	// Внутри типа: сначала более узкое окно, при равной ширине меньший ID
	for _, list := range byType {
		sort.SliceStable(list, func(i, j int) bool {
			wi, wj := list[i].WindowMinutes(), list[j].WindowMinutes()
			if wi != wj {
				return wi < wj
			}
			return list[i].ID < list[j].ID
		})
	}

	return &priceResolver{
		sport:     sport,
		date:      date,
		isWeekend: domain.IsWeekend(date),
		rules:     byType,
	}, skipped
}

type skippedRule struct {
	rule *domain.PricingRule
	err  error
}

// apply проставляет цену свободным слотам, у занятых цена остается nil
func (p *priceResolver) apply(slots []domain.Slot) []domain.Slot {
	result := make([]domain.Slot, len(slots))

	for i, slot := range slots {
		slot.Price = nil
		if slot.IsAvailable() {
			slot.Price = ptr.Ptr(p.priceAt(slot.StartTime))
		}
		result[i] = slot
	}

	return result
}

// priceAt возвращает цену слота, начинающегося в start
// Типы правил перебираются в порядке domain.RulePrecedence
// Правило, цену по которому посчитать не удалось, пропускается в пользу следующего
func (p *priceResolver) priceAt(start types.TimeString) int64 {
	for _, ruleType := range domain.RulePrecedence {
		if ruleType == domain.RuleWeekend && !p.isWeekend {
			continue
		}

		for _, rule := range p.matches(ruleType, start) {
			price, err := p.rulePrice(rule)
			if err != nil {
				p.fail(rule, err)
				continue
			}
			return price
		}
	}

	return p.sport.DayBasePrice(p.date)
}

func (p *priceResolver) rulePrice(rule *domain.PricingRule) (int64, error) {
	switch rule.Type {
	case domain.RuleOverride:
		return *rule.OverridePrice, nil
	case domain.RuleTimeOfDay:
		return rule.Multiplier.Apply(p.sport.DayBasePrice(p.date))
	case domain.RuleWeekend:
		if rule.OverridePrice != nil {
			return *rule.OverridePrice, nil
		}
		return rule.Multiplier.Apply(p.sport.BasePrice)
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrInvalidPricingRule, rule.Type)
}

// fail запоминает правило, отброшенное при расчете, один раз на правило
func (p *priceResolver) fail(rule *domain.PricingRule, err error) {
	if p.failedIDs == nil {
		p.failedIDs = make(map[int64]struct{})
	}
	if _, seen := p.failedIDs[rule.ID]; seen {
		return
	}
	p.failedIDs[rule.ID] = struct{}{}
	p.failed = append(p.failed, skippedRule{rule: rule, err: err})
}

// appliedRules количество правил, участвовавших в расчете
func (p *priceResolver) appliedRules() int {
	n := 0
	for _, list := range p.rules {
		n += len(list)
	}
	return n - len(p.failed)
}

// matches возвращает правила типа, окно которых содержит start, в порядке приоритета
func (p *priceResolver) matches(ruleType domain.RuleType, start types.TimeString) []*domain.PricingRule {
	var found []*domain.PricingRule
	for _, rule := range p.rules[ruleType] {
		if rule.ContainsTime(start) {
			found = append(found, rule)
		}
	}
	return found
}
