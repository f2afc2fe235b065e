package schedules

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/service/schedules/models"
)

type ScheduleService interface {
	List(ctx context.Context, req *models.ListSchedulesRequest) (*models.ScheduleListResponse, error)
	GetByID(ctx context.Context, storeID, scheduleID, userID uuid.UUID) (*models.ScheduleResponse, error)
	Delete(ctx context.Context, storeID, scheduleID, userID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
