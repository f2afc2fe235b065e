package calculate_totals

import "errors"

var (
	// ErrStoreNotFound возвращается, когда магазин не найден
	ErrStoreNotFound = errors.New("calculate_totals: store not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец магазина
	ErrAccessDenied = errors.New("calculate_totals: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("calculate_totals: internal error")
)
