package complete_schedule

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на завершение записи
type Request struct {
	UserID     uuid.UUID
	StoreID    uuid.UUID
	ScheduleID uuid.UUID
}

// Response результат завершения
type Response struct {
	ScheduleID  uuid.UUID
	CompletedAt time.Time
}
