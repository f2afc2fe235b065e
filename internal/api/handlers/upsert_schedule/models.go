package upsert_schedule

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/api/handlers"
	"github.com/m04kA/SMC-StoreAdmin/internal/service/schedules/models"
	upsertSchedule "github.com/m04kA/SMC-StoreAdmin/internal/usecase/upsert_schedule"
	"github.com/m04kA/SMC-StoreAdmin/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

// ScheduleRequest HTTP запрос на создание или изменение записи
// Итог и длительность не принимаются: они пересчитываются на сервере
type ScheduleRequest struct {
	CustomerID    uuid.UUID   `json:"customerId"`
	EmployeeID    uuid.UUID   `json:"employeeId"`
	ScheduledDate string      `json:"scheduledDate"` // "2025-05-20" или "20/05/2025"
	ScheduledTime string      `json:"scheduledTime"` // "14:30"
	ServiceIDs    []uuid.UUID `json:"serviceIds"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ScheduleRequest) ToUseCaseRequest(userID, storeID uuid.UUID, scheduleID *uuid.UUID) (*upsertSchedule.Request, error) {
	date, err := handlers.ParseDate(r.ScheduledDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	t, err := types.NewTimeStringFromString(r.ScheduledTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &upsertSchedule.Request{
		UserID:     userID,
		StoreID:    storeID,
		ScheduleID: scheduleID,
		CustomerID: r.CustomerID,
		EmployeeID: r.EmployeeID,
		Date:       date,
		Time:       t,
		ServiceIDs: r.ServiceIDs,
	}, nil
}

// ScheduleResponse сохранённая запись
type ScheduleResponse struct {
	*models.ScheduleResponse

	// Услуги, удалённые из выбора, потому что их больше нет в каталоге
	DroppedServiceIDs []uuid.UUID `json:"droppedServiceIds,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *upsertSchedule.Response) *ScheduleResponse {
	return &ScheduleResponse{
		ScheduleResponse:  models.FromDomainSchedule(resp.Schedule),
		DroppedServiceIDs: resp.DroppedServiceIDs,
	}
}
