package pricingrule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	"github.com/m04kA/SMC-ArenaBookingService/internal/testutil"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/types"
)

func TestRepository_GetActiveBySport_FiltersActive(t *testing.T) {
	exec := &testutil.RecordingExecutor{}
	repo := NewRepository(exec)

	_, err := repo.GetActiveBySport(context.Background(), 7)
	assert.ErrorIs(t, err, ErrExecQuery)

	q := exec.Last()
	assert.Regexp(t, `FROM pricing_rules WHERE \(?is_active = \$1 AND sport_id = \$2\)? ORDER BY id ASC$`, q.SQL)
	assert.Equal(t, []interface{}{true, int64(7)}, q.Args)
}

func TestRepository_GetBySport_IncludesInactive(t *testing.T) {
	exec := &testutil.RecordingExecutor{}
	repo := NewRepository(exec)

	_, err := repo.GetBySport(context.Background(), 7)
	assert.ErrorIs(t, err, ErrExecQuery)

	q := exec.Last()
	assert.Contains(t, q.SQL, "WHERE sport_id = $1 ORDER BY id ASC")
	assert.NotContains(t, q.SQL, "is_active =")
	assert.Equal(t, []interface{}{int64(7)}, q.Args)
}

func TestRepository_SetActiveAndDelete_Queries(t *testing.T) {
	exec := &testutil.RecordingExecutor{}
	repo := NewRepository(exec)

	err := repo.SetActive(context.Background(), 3, false)
	assert.ErrorIs(t, err, ErrExecQuery)
	q := exec.Last()
	assert.Equal(t, "UPDATE pricing_rules SET is_active = $1, updated_at = NOW() WHERE id = $2", q.SQL)
	assert.Equal(t, []interface{}{false, int64(3)}, q.Args)

	err = repo.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, ErrExecQuery)
	q = exec.Last()
	assert.Equal(t, "DELETE FROM pricing_rules WHERE id = $1", q.SQL)
	assert.Equal(t, []interface{}{int64(3)}, q.Args)
}

func TestScanRule(t *testing.T) {
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("множитель разбирается из текста", func(t *testing.T) {
		rule, err := scanRule(testutil.FakeRow{Values: []interface{}{
			int64(1), int64(7), "Вечер", "time_of_day", int64(18 * 60), int64(22 * 60),
			"1.5", nil, true, created, created,
		}})
		require.NoError(t, err)

		assert.Equal(t, domain.RuleTimeOfDay, rule.Type)
		assert.Equal(t, types.TimeString("18:00"), rule.StartTime)
		assert.Equal(t, types.TimeString("22:00"), rule.EndTime)
		require.NotNil(t, rule.Multiplier)
		assert.Equal(t, "1.5", rule.Multiplier.String())
		assert.Nil(t, rule.OverridePrice)
		assert.NoError(t, rule.Validate())
		assert.True(t, created.Equal(rule.CreatedAt))
	})

	t.Run("нераспознанный множитель не проходит Validate", func(t *testing.T) {
		rule, err := scanRule(testutil.FakeRow{Values: []interface{}{
			int64(2), int64(7), "Битое", "time_of_day", int64(18 * 60), int64(22 * 60),
			"abc", nil, true, nil, nil,
		}})
		require.NoError(t, err)

		require.NotNil(t, rule.Multiplier)
		assert.False(t, rule.Multiplier.IsValid())
		assert.ErrorIs(t, rule.Validate(), domain.ErrInvalidPricingRule)
	})

	t.Run("override цена", func(t *testing.T) {
		rule, err := scanRule(testutil.FakeRow{Values: []interface{}{
			int64(3), int64(7), "Акция", "override", int64(8 * 60), int64(10 * 60),
			nil, int64(500), true, nil, nil,
		}})
		require.NoError(t, err)

		assert.Nil(t, rule.Multiplier)
		require.NotNil(t, rule.OverridePrice)
		assert.Equal(t, int64(500), *rule.OverridePrice)
	})
}
