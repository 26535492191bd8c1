package sports

import "errors"

var (
	// ErrSportNotFound возвращается, когда площадка не найдена
	ErrSportNotFound = errors.New("sport not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
