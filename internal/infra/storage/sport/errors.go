package sport

import "errors"

var (
	// ErrSportNotFound возвращается, когда площадка не найдена
	ErrSportNotFound = errors.New("sport.repository: sport not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("sport.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("sport.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("sport.repository: failed to scan row")
)
