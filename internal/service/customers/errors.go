package customers

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrStoreNotFound возвращается, когда магазин не найден
	ErrStoreNotFound = errors.New("store not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец магазина
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
