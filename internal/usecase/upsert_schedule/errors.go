package upsert_schedule

import "errors"

var (
	// ErrStoreNotFound возвращается, когда магазин не найден
	ErrStoreNotFound = errors.New("upsert_schedule: store not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец магазина
	ErrAccessDenied = errors.New("upsert_schedule: access denied")

	// ErrScheduleNotFound возвращается, когда изменяемая запись не найдена
	ErrScheduleNotFound = errors.New("upsert_schedule: schedule not found")

	// ErrScheduleCompleted возвращается при попытке изменить завершённую запись
	ErrScheduleCompleted = errors.New("upsert_schedule: schedule is already completed")

	// ErrCustomerNotFound возвращается, когда клиент не найден в магазине
	ErrCustomerNotFound = errors.New("upsert_schedule: customer not found")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден в магазине
	ErrEmployeeNotFound = errors.New("upsert_schedule: employee not found")

	// ErrNoServices возвращается, когда ни одна выбранная услуга не найдена в каталоге
	ErrNoServices = errors.New("upsert_schedule: no valid services selected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("upsert_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("upsert_schedule: internal error")
)
