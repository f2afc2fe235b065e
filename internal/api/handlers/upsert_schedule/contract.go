package upsert_schedule

import (
	"context"

	upsertSchedule "github.com/m04kA/SMC-StoreAdmin/internal/usecase/upsert_schedule"
)

type UpsertScheduleUseCase interface {
	Execute(ctx context.Context, req *upsertSchedule.Request) (*upsertSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
