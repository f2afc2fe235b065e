package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrStoreNotFound возвращается, когда магазин не найден
	ErrStoreNotFound = errors.New("store not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец магазина
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDuration возвращается, когда длительность не распознана или равна нулю
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
