package complete_schedule

import "errors"

var (
	// ErrStoreNotFound возвращается, когда магазин не найден
	ErrStoreNotFound = errors.New("complete_schedule: store not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец магазина
	ErrAccessDenied = errors.New("complete_schedule: access denied")

	// ErrScheduleNotFound возвращается, когда запись не найдена
	ErrScheduleNotFound = errors.New("complete_schedule: schedule not found")

	// ErrAlreadyCompleted возвращается при повторном завершении записи
	ErrAlreadyCompleted = errors.New("complete_schedule: schedule already completed")

	// ErrTooEarly возвращается, если день записи ещё не наступил
	ErrTooEarly = errors.New("complete_schedule: scheduled date not reached")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("complete_schedule: internal error")
)
