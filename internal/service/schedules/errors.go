package schedules

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда запись не найдена
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrStoreNotFound возвращается, когда магазин не найден
	ErrStoreNotFound = errors.New("store not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец магазина
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
