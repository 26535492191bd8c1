package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSportNotFound возвращается, когда площадка не найдена
	ErrSportNotFound = errors.New("sport not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrCannotConfirm возвращается, когда подтвердить можно только pending бронирование
	ErrCannotConfirm = errors.New("booking cannot be confirmed")

	// ErrSlotNotAvailable возвращается, когда новый слот при переносе занят
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrInvalidConfiguration возвращается, когда по настройкам площадки нельзя построить сетку
	ErrInvalidConfiguration = errors.New("invalid sport configuration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
