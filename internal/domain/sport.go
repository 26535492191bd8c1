package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/pkg/types"
)

// Sport вид спорта (площадка) с часами работы и базовыми ценами
// Цены в минимальных единицах валюты
type Sport struct {
	ID                  int64
	Name                string
	BasePrice           int64
	WeekendPrice        *int64 // NULL = в выходные действует базовая цена
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HasWeekendPrice возвращает true, если задана отдельная цена выходного дня
func (s *Sport) HasWeekendPrice() bool {
	return s.WeekendPrice != nil
}

// DayBasePrice возвращает базовую цену для даты с учетом цены выходного дня
func (s *Sport) DayBasePrice(date time.Time) int64 {
	if IsWeekend(date) && s.HasWeekendPrice() {
		return *s.WeekendPrice
	}
	return s.BasePrice
}

// ValidateSchedule проверяет, что по часам работы можно построить сетку слотов
func (s *Sport) ValidateSchedule() error {
	open := s.OpenTime.Minutes()
	closeAt := s.CloseTime.Minutes()

	if open < 0 || closeAt < 0 {
		return fmt.Errorf("%w: malformed operating hours %q-%q", ErrInvalidSportConfig, s.OpenTime, s.CloseTime)
	}
	if closeAt <= open {
		return fmt.Errorf("%w: close time %s must be after open time %s", ErrInvalidSportConfig, s.CloseTime, s.OpenTime)
	}
	if s.SlotDurationMinutes <= 0 {
		return fmt.Errorf("%w: slot duration must be positive, got %d", ErrInvalidSportConfig, s.SlotDurationMinutes)
	}
	if (closeAt-open)%s.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: slot duration %d does not divide %s-%s", ErrInvalidSportConfig, s.SlotDurationMinutes, s.OpenTime, s.CloseTime)
	}
	return nil
}

// IsWeekend возвращает true для субботы и воскресенья календарной даты
// Дата рассматривается без часового пояса
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DateOnly отбрасывает время, сохраняя календарную дату в UTC
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
