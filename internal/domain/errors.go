package domain

import "errors"

var (
	// ErrInvalidPricingRule возвращается при нарушении инвариантов правила ценообразования
	ErrInvalidPricingRule = errors.New("domain: invalid pricing rule")

	// ErrInvalidTimeRange возвращается, когда конец интервала не позже начала
	ErrInvalidTimeRange = errors.New("domain: end time must be after start time")

	// ErrInvalidSportConfig возвращается при некорректных часах работы или длительности слота
	ErrInvalidSportConfig = errors.New("domain: invalid sport configuration")
)
