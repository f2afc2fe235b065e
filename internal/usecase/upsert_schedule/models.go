package upsert_schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
	"github.com/m04kA/SMC-StoreAdmin/pkg/types"
)

// Request модель запроса на создание или изменение записи
type Request struct {
	UserID     uuid.UUID        // владелец магазина
	StoreID    uuid.UUID        // ID магазина
	ScheduleID *uuid.UUID       // nil - создать новую запись
	CustomerID uuid.UUID        // ID клиента
	EmployeeID uuid.UUID        // ID сотрудника
	Date       time.Time        // дата записи (без времени)
	Time       types.TimeString // время начала, "14:30"
	ServiceIDs []uuid.UUID      // выбранные услуги
}

// IsUpdate сообщает, изменяется ли существующая запись
func (r *Request) IsUpdate() bool {
	return r.ScheduleID != nil
}

// Response модель ответа с сохранённой записью
type Response struct {
	Schedule *domain.Schedule
	Created  bool

	// Выбранные услуги, которых уже нет в каталоге; из записи они удалены
	DroppedServiceIDs []uuid.UUID
}
