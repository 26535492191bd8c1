package resolve_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/ptr"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/types"
)

var saturday = time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

func multRule(id int64, ruleType domain.RuleType, start, end types.TimeString, mult string) *domain.PricingRule {
	m := types.MustMultiplier(mult)
	return &domain.PricingRule{
		ID: id, SportID: 1, Name: "rule", Type: ruleType,
		StartTime: start, EndTime: end, Multiplier: &m, IsActive: true,
	}
}

func priceRule(id int64, ruleType domain.RuleType, start, end types.TimeString, price int64) *domain.PricingRule {
	return &domain.PricingRule{
		ID: id, SportID: 1, Name: "rule", Type: ruleType,
		StartTime: start, EndTime: end, OverridePrice: ptr.Ptr(price), IsActive: true,
	}
}

func TestPriceResolver_PriceAt(t *testing.T) {
	base := &domain.Sport{ID: 1, BasePrice: 1000}
	withWeekend := &domain.Sport{ID: 1, BasePrice: 1000, WeekendPrice: ptr.Ptr(int64(1200))}

	tests := []struct {
		name  string
		sport *domain.Sport
		date  time.Time
		rules []*domain.PricingRule
		start types.TimeString
		want  int64
	}{
		{
			name: "без правил базовая цена", sport: base, date: monday,
			start: "12:00", want: 1000,
		},
		{
			name: "вечерний множитель внутри окна", sport: base, date: monday,
			rules: []*domain.PricingRule{multRule(1, domain.RuleTimeOfDay, "18:00", "22:00", "1.5")},
			start: "19:00", want: 1500,
		},
		{
			name: "вечерний множитель вне окна", sport: base, date: monday,
			rules: []*domain.PricingRule{multRule(1, domain.RuleTimeOfDay, "18:00", "22:00", "1.5")},
			start: "12:00", want: 1000,
		},
		{
			name: "начало окна включено", sport: base, date: monday,
			rules: []*domain.PricingRule{multRule(1, domain.RuleTimeOfDay, "18:00", "22:00", "1.5")},
			start: "18:00", want: 1500,
		},
		{
			name: "конец окна исключен", sport: base, date: monday,
			rules: []*domain.PricingRule{multRule(1, domain.RuleTimeOfDay, "08:00", "10:00", "2")},
			start: "10:00", want: 1000,
		},
		{
			name: "цена выходного дня в субботу", sport: withWeekend, date: saturday,
			start: "12:00", want: 1200,
		},
		{
			name: "цена выходного дня не действует в будни", sport: withWeekend, date: monday,
			start: "12:00", want: 1000,
		},
		{
			name: "override побеждает множитель", sport: base, date: monday,
			rules: []*domain.PricingRule{
				multRule(1, domain.RuleTimeOfDay, "08:00", "10:00", "2"),
				priceRule(2, domain.RuleOverride, "08:00", "10:00", 500),
			},
			start: "08:00", want: 500,
		},
		{
			name: "множитель от цены выходного дня", sport: withWeekend, date: saturday,
			rules: []*domain.PricingRule{multRule(1, domain.RuleTimeOfDay, "18:00", "22:00", "1.5")},
			start: "19:00", want: 1800,
		},
		{
			name: "weekend правило с ценой побеждает цену выходного дня", sport: withWeekend, date: saturday,
			rules: []*domain.PricingRule{priceRule(1, domain.RuleWeekend, "00:00", "24:00", 1400)},
			start: "09:00", want: 1400,
		},
		{
			name: "weekend правило с множителем от базовой цены", sport: withWeekend, date: saturday,
			rules: []*domain.PricingRule{multRule(1, domain.RuleWeekend, "00:00", "24:00", "1.1")},
			start: "09:00", want: 1100,
		},
		{
			name: "weekend правило не действует в будни", sport: base, date: monday,
			rules: []*domain.PricingRule{priceRule(1, domain.RuleWeekend, "00:00", "24:00", 1400)},
			start: "09:00", want: 1000,
		},
		{
			name: "weekend правило вне окна уступает цене выходного дня", sport: withWeekend, date: saturday,
			rules: []*domain.PricingRule{priceRule(1, domain.RuleWeekend, "18:00", "22:00", 1400)},
			start: "09:00", want: 1200,
		},
		{
			name: "time_of_day важнее weekend правила", sport: base, date: saturday,
			rules: []*domain.PricingRule{
				priceRule(1, domain.RuleWeekend, "00:00", "24:00", 1400),
				multRule(2, domain.RuleTimeOfDay, "18:00", "22:00", "2"),
			},
			start: "19:00", want: 2000,
		},
		{
			name: "более узкое окно побеждает", sport: base, date: monday,
			rules: []*domain.PricingRule{
				multRule(1, domain.RuleTimeOfDay, "08:00", "22:00", "1.2"),
				multRule(2, domain.RuleTimeOfDay, "18:00", "20:00", "1.5"),
			},
			start: "19:00", want: 1500,
		},
		{
			name: "при равной ширине побеждает меньший ID", sport: base, date: monday,
			rules: []*domain.PricingRule{
				multRule(7, domain.RuleTimeOfDay, "18:00", "20:00", "1.5"),
				multRule(3, domain.RuleTimeOfDay, "18:00", "20:00", "1.25"),
			},
			start: "19:00", want: 1250,
		},
		{
			name: "округление половины вверх", sport: &domain.Sport{BasePrice: 1001}, date: monday,
			rules: []*domain.PricingRule{multRule(1, domain.RuleTimeOfDay, "00:00", "24:00", "1.5")},
			start: "12:00", want: 1502,
		},
		{
			name: "рациональный множитель округляется один раз", sport: &domain.Sport{BasePrice: 1000}, date: monday,
			rules: []*domain.PricingRule{multRule(1, domain.RuleTimeOfDay, "00:00", "24:00", "2/3")},
			start: "12:00", want: 667,
		},
		{
			name: "неактивное правило игнорируется", sport: base, date: monday,
			rules: []*domain.PricingRule{func() *domain.PricingRule {
				r := priceRule(1, domain.RuleOverride, "08:00", "22:00", 1)
				r.IsActive = false
				return r
			}()},
			start: "12:00", want: 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver, skipped := newPriceResolver(tt.sport, tt.date, tt.rules)
			require.Empty(t, skipped)

			assert.Equal(t, tt.want, resolver.priceAt(tt.start))
			assert.Empty(t, resolver.failed)
		})
	}
}

func TestPriceResolver_SkipsMalformedRules(t *testing.T) {
	sport := &domain.Sport{ID: 1, BasePrice: 1000}
	broken := multRule(1, domain.RuleTimeOfDay, "22:00", "18:00", "3")
	noOverride := &domain.PricingRule{ID: 2, SportID: 1, Name: "x", Type: domain.RuleOverride, StartTime: "08:00", EndTime: "22:00", IsActive: true}
	good := multRule(3, domain.RuleTimeOfDay, "18:00", "22:00", "1.5")

	resolver, skipped := newPriceResolver(sport, monday, []*domain.PricingRule{broken, noOverride, good})

	require.Len(t, skipped, 2)
	assert.Equal(t, int64(1), skipped[0].rule.ID)
	assert.Equal(t, int64(2), skipped[1].rule.ID)

	assert.Equal(t, int64(1500), resolver.priceAt("19:00"))
	assert.Equal(t, int64(1000), resolver.priceAt("12:00"))
}

func TestPriceResolver_ApplyLeavesOccupiedWithoutPrice(t *testing.T) {
	sport := &domain.Sport{ID: 1, BasePrice: 1000}
	slots := []domain.Slot{
		{StartTime: "10:00", EndTime: "11:00", Status: domain.SlotAvailable},
		{StartTime: "11:00", EndTime: "12:00", Status: domain.SlotBooked},
		{StartTime: "12:00", EndTime: "13:00", Status: domain.SlotBlocked},
	}

	resolver, _ := newPriceResolver(sport, monday, nil)
	got := resolver.apply(slots)

	require.NotNil(t, got[0].Price)
	assert.Equal(t, int64(1000), *got[0].Price)
	assert.Nil(t, got[1].Price)
	assert.Nil(t, got[2].Price)
}

func TestPriceResolver_OverflowingMultiplierFallsThrough(t *testing.T) {
	sport := &domain.Sport{ID: 1, BasePrice: 1000, WeekendPrice: ptr.Ptr(int64(1200))}

	tests := []struct {
		name  string
		date  time.Time
		rules []*domain.PricingRule
		want  int64
	}{
		{
			name:  "к базовой цене",
			date:  monday,
			rules: []*domain.PricingRule{multRule(1, domain.RuleTimeOfDay, "18:00", "22:00", "1e20")},
			want:  1000,
		},
		{
			name: "к следующему правилу того же типа",
			date: monday,
			rules: []*domain.PricingRule{
				multRule(1, domain.RuleTimeOfDay, "18:00", "20:00", "1e20"),
				multRule(2, domain.RuleTimeOfDay, "18:00", "22:00", "1.5"),
			},
			want: 1500,
		},
		{
			name: "к правилу младшего типа",
			date: saturday,
			rules: []*domain.PricingRule{
				multRule(1, domain.RuleTimeOfDay, "18:00", "22:00", "1e20"),
				priceRule(2, domain.RuleWeekend, "00:00", "24:00", 1400),
			},
			want: 1400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver, skipped := newPriceResolver(sport, tt.date, tt.rules)
			require.Empty(t, skipped)

			assert.Equal(t, tt.want, resolver.priceAt("19:00"))
			assert.Equal(t, tt.want, resolver.priceAt("18:00"))

			require.Len(t, resolver.failed, 1, "правило учитывается один раз")
			assert.Equal(t, int64(1), resolver.failed[0].rule.ID)
			assert.ErrorIs(t, resolver.failed[0].err, types.ErrPriceOverflow)
			assert.Equal(t, len(tt.rules)-1, resolver.appliedRules())
		})
	}
}
