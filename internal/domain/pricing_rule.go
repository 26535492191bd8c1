package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/pkg/types"
)

// RuleType тип правила ценообразования
type RuleType string

const (
	RuleOverride  RuleType = "override"
	RuleTimeOfDay RuleType = "time_of_day"
	RuleWeekend   RuleType = "weekend"
)

// RulePrecedence порядок применения типов правил, от старшего к младшему
var RulePrecedence = []RuleType{
	RuleOverride,
	RuleTimeOfDay,
	RuleWeekend,
}

// IsValidRuleType проверяет, что тип правила известен
func IsValidRuleType(t RuleType) bool {
	for _, known := range RulePrecedence {
		if t == known {
			return true
		}
	}
	return false
}

// PricingRule правило ценообразования площадки
//
// Набор обязательных полей зависит от типа:
//   - override: OverridePrice, без Multiplier
//   - time_of_day: Multiplier, без OverridePrice
//   - weekend: ровно одно из OverridePrice или Multiplier
type PricingRule struct {
	ID            int64
	SportID       int64
	Name          string
	Type          RuleType
	StartTime     types.TimeString
	EndTime       types.TimeString
	Multiplier    *types.Multiplier
	OverridePrice *int64
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PricingRuleParams параметры создания правила
type PricingRuleParams struct {
	SportID       int64
	Name          string
	Type          RuleType
	StartTime     types.TimeString
	EndTime       types.TimeString
	Multiplier    *types.Multiplier
	OverridePrice *int64
	IsActive      bool
}

// NewPricingRule создает правило, проверяя поля, обязательные для его типа
func NewPricingRule(p PricingRuleParams) (*PricingRule, error) {
	rule := &PricingRule{
		SportID:       p.SportID,
		Name:          strings.TrimSpace(p.Name),
		Type:          p.Type,
		StartTime:     p.StartTime,
		EndTime:       p.EndTime,
		Multiplier:    p.Multiplier,
		OverridePrice: p.OverridePrice,
		IsActive:      p.IsActive,
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	return rule, nil
}

// Validate проверяет инварианты правила
// Правила из хранилища тоже проходят эту проверку: некорректные пропускаются при расчете цены
func (r *PricingRule) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidPricingRule)
	}
	if len(r.Name) > MaxPricingRuleNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidPricingRule)
	}
	if !IsValidRuleType(r.Type) {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidPricingRule, r.Type)
	}
	if err := r.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidPricingRule, err)
	}
	if err := r.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidPricingRule, err)
	}
	if !r.StartTime.IsBefore(r.EndTime) {
		return fmt.Errorf("%w: %w (%s-%s)", ErrInvalidPricingRule, ErrInvalidTimeRange, r.StartTime, r.EndTime)
	}

	hasMultiplier := r.Multiplier != nil && r.Multiplier.IsValid()
	hasOverride := r.OverridePrice != nil
	if r.Multiplier != nil && !r.Multiplier.IsValid() {
		return fmt.Errorf("%w: multiplier must be positive", ErrInvalidPricingRule)
	}
	if hasOverride && *r.OverridePrice < 0 {
		return fmt.Errorf("%w: override price must not be negative", ErrInvalidPricingRule)
	}

	switch r.Type {
	case RuleOverride:
		if !hasOverride || hasMultiplier {
			return fmt.Errorf("%w: override rule requires override price and no multiplier", ErrInvalidPricingRule)
		}
	case RuleTimeOfDay:
		if !hasMultiplier || hasOverride {
			return fmt.Errorf("%w: time_of_day rule requires multiplier and no override price", ErrInvalidPricingRule)
		}
	case RuleWeekend:
		if hasMultiplier == hasOverride {
			return fmt.Errorf("%w: weekend rule requires exactly one of multiplier or override price", ErrInvalidPricingRule)
		}
	}

	return nil
}

// ContainsTime проверяет, что момент t попадает в окно правила [start, end)
func (r *PricingRule) ContainsTime(t types.TimeString) bool {
	return !t.IsBefore(r.StartTime) && t.IsBefore(r.EndTime)
}

// WindowMinutes возвращает ширину окна правила в минутах
func (r *PricingRule) WindowMinutes() int {
	return r.EndTime.Minutes() - r.StartTime.Minutes()
}
