package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ArenaBookingService/pkg/ptr"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/types"
)

func TestSport_ValidateSchedule(t *testing.T) {
	tests := []struct {
		name     string
		open     string
		close    string
		duration int
		wantErr  bool
	}{
		{name: "корректные часы", open: "08:00", close: "22:00", duration: 60},
		{name: "до конца суток", open: "08:00", close: "24:00", duration: 30},
		{name: "закрытие раньше открытия", open: "22:00", close: "08:00", duration: 60, wantErr: true},
		{name: "закрытие равно открытию", open: "08:00", close: "08:00", duration: 60, wantErr: true},
		{name: "нулевая длительность", open: "08:00", close: "22:00", duration: 0, wantErr: true},
		{name: "длительность не делит интервал", open: "08:00", close: "22:00", duration: 45, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Sport{OpenTime: types.TimeString(tt.open), CloseTime: types.TimeString(tt.close), SlotDurationMinutes: tt.duration}
			err := s.ValidateSchedule()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSportConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSport_DayBasePrice(t *testing.T) {
	saturday := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	s := &Sport{BasePrice: 1000, WeekendPrice: ptr.Ptr(int64(1200))}
	assert.Equal(t, int64(1200), s.DayBasePrice(saturday))
	assert.Equal(t, int64(1000), s.DayBasePrice(monday))

	s.WeekendPrice = nil
	assert.Equal(t, int64(1000), s.DayBasePrice(saturday))
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)))
	assert.True(t, IsWeekend(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsWeekend(time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)))
}
