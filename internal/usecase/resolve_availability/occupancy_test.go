package resolve_availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/types"
)

func hourlyGrid(t *testing.T) []domain.Slot {
	t.Helper()
	sport := &domain.Sport{ID: 1, OpenTime: "08:00", CloseTime: "22:00", SlotDurationMinutes: 60}
	slots, err := generateSlots(sport, monday)
	require.NoError(t, err)
	return slots
}

func booking(status domain.BookingStatus, start, end types.TimeString) *domain.Booking {
	return &domain.Booking{SportID: 1, BookingDate: monday, StartTime: start, EndTime: end, Status: status}
}

func block(start, end types.TimeString) *domain.BlockedSlot {
	return &domain.BlockedSlot{SportID: 1, Date: monday, StartTime: start, EndTime: end}
}

func statuses(slots []domain.Slot) map[types.TimeString]domain.SlotStatus {
	result := make(map[types.TimeString]domain.SlotStatus, len(slots))
	for _, s := range slots {
		result[s.StartTime] = s.Status
	}
	return result
}

func TestApplyOccupancy_EmptyDayIsAvailable(t *testing.T) {
	slots := applyOccupancy(hourlyGrid(t), nil, nil)

	for _, s := range slots {
		assert.Equal(t, domain.SlotAvailable, s.Status)
	}
}

func TestApplyOccupancy_ConfirmedBooking(t *testing.T) {
	slots := applyOccupancy(hourlyGrid(t), []*domain.Booking{
		booking(domain.StatusConfirmed, "10:00", "11:00"),
	}, nil)

	require.Len(t, slots, 14)
	for i, s := range slots {
		if i == 2 {
			assert.Equal(t, domain.SlotBooked, s.Status)
			continue
		}
		assert.Equal(t, domain.SlotAvailable, s.Status, "slot %s", s.StartTime)
	}
}

func TestApplyOccupancy_CancelledBookingNeverOccupies(t *testing.T) {
	slots := applyOccupancy(hourlyGrid(t), []*domain.Booking{
		booking(domain.StatusCancelled, "10:00", "12:00"),
	}, nil)

	got := statuses(slots)
	assert.Equal(t, domain.SlotAvailable, got["10:00"])
	assert.Equal(t, domain.SlotAvailable, got["11:00"])
}

func TestApplyOccupancy_BlockedWinsOverBooked(t *testing.T) {
	slots := applyOccupancy(hourlyGrid(t),
		[]*domain.Booking{booking(domain.StatusPending, "10:00", "11:00")},
		[]*domain.BlockedSlot{block("10:00", "11:00")},
	)

	assert.Equal(t, domain.SlotBlocked, statuses(slots)["10:00"])
}

func TestApplyOccupancy_UnalignedRanges(t *testing.T) {
	tests := []struct {
		name     string
		bookings []*domain.Booking
		blocked  []*domain.BlockedSlot
		want     map[types.TimeString]domain.SlotStatus
	}{
		{
			name:     "бронирование не по сетке занимает оба слота",
			bookings: []*domain.Booking{booking(domain.StatusConfirmed, "10:30", "11:30")},
			want: map[types.TimeString]domain.SlotStatus{
				"09:00": domain.SlotAvailable,
				"10:00": domain.SlotBooked,
				"11:00": domain.SlotBooked,
				"12:00": domain.SlotAvailable,
			},
		},
		{
			name:     "короткое бронирование внутри слота",
			bookings: []*domain.Booking{booking(domain.StatusPending, "14:20", "14:40")},
			want: map[types.TimeString]domain.SlotStatus{
				"13:00": domain.SlotAvailable,
				"14:00": domain.SlotBooked,
				"15:00": domain.SlotAvailable,
			},
		},
		{
			name:    "блокировка на несколько слотов",
			blocked: []*domain.BlockedSlot{block("12:00", "15:00")},
			want: map[types.TimeString]domain.SlotStatus{
				"11:00": domain.SlotAvailable,
				"12:00": domain.SlotBlocked,
				"13:00": domain.SlotBlocked,
				"14:00": domain.SlotBlocked,
				"15:00": domain.SlotAvailable,
			},
		},
		{
			name:     "граничащие интервалы не пересекаются",
			bookings: []*domain.Booking{booking(domain.StatusConfirmed, "09:00", "10:00")},
			blocked:  []*domain.BlockedSlot{block("11:00", "12:00")},
			want: map[types.TimeString]domain.SlotStatus{
				"08:00": domain.SlotAvailable,
				"09:00": domain.SlotBooked,
				"10:00": domain.SlotAvailable,
				"11:00": domain.SlotBlocked,
				"12:00": domain.SlotAvailable,
			},
		},
		{
			name:     "частичная блокировка поверх бронирования",
			bookings: []*domain.Booking{booking(domain.StatusConfirmed, "16:00", "18:00")},
			blocked:  []*domain.BlockedSlot{block("16:45", "17:15")},
			want: map[types.TimeString]domain.SlotStatus{
				"16:00": domain.SlotBlocked,
				"17:00": domain.SlotBlocked,
				"18:00": domain.SlotAvailable,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statuses(applyOccupancy(hourlyGrid(t), tt.bookings, tt.blocked))
			for start, want := range tt.want {
				assert.Equal(t, want, got[start], "slot %s", start)
			}
		})
	}
}

func TestApplyOccupancy_DoesNotMutateInput(t *testing.T) {
	grid := hourlyGrid(t)

	_ = applyOccupancy(grid, []*domain.Booking{booking(domain.StatusConfirmed, "10:00", "11:00")}, nil)

	for _, s := range grid {
		assert.Empty(t, s.Status)
	}
}
