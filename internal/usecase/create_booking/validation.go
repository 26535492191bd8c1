package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ArenaBookingService/internal/domain"
	"github.com/m04kA/SMC-ArenaBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.SportID <= 0 {
		return fmt.Errorf("%w: sportID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate проверяет, что дата подходит для бронирования
// advanceBookingDays = 0 снимает ограничение на дальность
func validateDate(bookingDate time.Time, now time.Time, advanceBookingDays int) error {
	today := domain.DateOnly(now)
	date := domain.DateOnly(bookingDate)

	if date.Before(today) {
		return ErrInvalidDate
	}

	if advanceBookingDays == 0 {
		return nil
	}

	if date.After(today.AddDate(0, 0, advanceBookingDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateBookingTime проверяет, что слот сегодняшнего дня еще не начался
func validateBookingTime(bookingDate time.Time, startTime types.TimeString, now time.Time) error {
	if !domain.DateOnly(bookingDate).Equal(domain.DateOnly(now)) {
		return nil
	}

	if !types.NewTimeString(now).IsBefore(startTime) {
		return fmt.Errorf("%w: slot %s has already started", ErrTooLateToBook, startTime)
	}

	return nil
}

// findSlot ищет слот сетки, начинающийся в startTime
func findSlot(slots []domain.Slot, startTime types.TimeString) (*domain.Slot, bool) {
	for i := range slots {
		if slots[i].StartTime.Equal(startTime) {
			return &slots[i], true
		}
	}
	return nil, false
}
