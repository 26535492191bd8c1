package resolve_availability

import "errors"

var (
	// ErrSportNotFound возвращается, когда площадка не найдена или неактивна
	ErrSportNotFound = errors.New("sport not found")

	// ErrInvalidConfiguration возвращается при некорректных часах работы или длительности слота
	ErrInvalidConfiguration = errors.New("invalid sport configuration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
