package blockedslot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArenaBookingService/internal/testutil"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/types"
)

func TestRepository_GetBySportAndDate_NormalizesDate(t *testing.T) {
	exec := &testutil.RecordingExecutor{}
	repo := NewRepository(exec)

	moscow := time.FixedZone("MSK", 3*60*60)
	date := time.Date(2025, 6, 14, 23, 30, 0, 0, moscow)

	_, err := repo.GetBySportAndDate(context.Background(), 3, date)
	assert.ErrorIs(t, err, ErrExecQuery)

	q := exec.Last()
	assert.Contains(t, q.SQL, "FROM blocked_slots WHERE sport_id = $1 AND blocked_date = $2")
	assert.Contains(t, q.SQL, "ORDER BY blocked_date ASC, start_minute ASC, id ASC")
	require.Len(t, q.Args, 2)
	assert.Equal(t, int64(3), q.Args[0])
	assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), q.Args[1])
}

func TestRepository_GetBySport_WithoutDate(t *testing.T) {
	exec := &testutil.RecordingExecutor{}
	repo := NewRepository(exec)

	_, err := repo.GetBySport(context.Background(), 3, nil)
	assert.ErrorIs(t, err, ErrExecQuery)

	q := exec.Last()
	assert.NotContains(t, q.SQL, "blocked_date =")
	assert.Equal(t, []interface{}{int64(3)}, q.Args)
}

func TestRepository_Delete_Query(t *testing.T) {
	exec := &testutil.RecordingExecutor{}

	err := NewRepository(exec).Delete(context.Background(), 11)
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.Equal(t, "DELETE FROM blocked_slots WHERE id = $1", exec.Last().SQL)
}

func TestScanBlockedSlot_TruncatesDate(t *testing.T) {
	stored := time.Date(2025, 6, 14, 0, 0, 0, 0, time.FixedZone("MSK", 3*60*60))

	slot, err := scanBlockedSlot(testutil.FakeRow{Values: []interface{}{
		int64(1), int64(3), stored, int64(10 * 60), int64(12 * 60), "Турнир", int64(99), nil,
	}})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), slot.Date)
	assert.Equal(t, types.TimeString("10:00"), slot.StartTime)
	assert.Equal(t, types.TimeString("12:00"), slot.EndTime)
	require.NotNil(t, slot.Reason)
	assert.Equal(t, "Турнир", *slot.Reason)
	assert.Equal(t, int64(99), slot.CreatedBy)
}
