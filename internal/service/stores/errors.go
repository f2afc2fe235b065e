package stores

import "errors"

var (
	// ErrStoreNotFound возвращается, когда магазин не найден
	ErrStoreNotFound = errors.New("store not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец магазина
	ErrAccessDenied = errors.New("access denied")

	// ErrSlugTaken возвращается, когда slug уже занят другим магазином
	ErrSlugTaken = errors.New("slug already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
