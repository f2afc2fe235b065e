package employees

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrStoreNotFound возвращается, когда магазин не найден
	ErrStoreNotFound = errors.New("store not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец магазина
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidCommission возвращается при некорректной комиссии
	ErrInvalidCommission = errors.New("invalid commission")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
