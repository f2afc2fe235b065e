package complete_schedule

import (
	"context"

	completeSchedule "github.com/m04kA/SMC-StoreAdmin/internal/usecase/complete_schedule"
)

type CompleteScheduleUseCase interface {
	Execute(ctx context.Context, req *completeSchedule.Request) (*completeSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
