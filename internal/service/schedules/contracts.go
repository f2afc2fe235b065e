package schedules

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
)

// ScheduleRepository интерфейс репозитория записей
type ScheduleRepository interface {
	GetByID(ctx context.Context, storeID, id uuid.UUID) (*domain.Schedule, error)
	ListByStore(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Schedule, error)
	Delete(ctx context.Context, storeID, id uuid.UUID) error
}

// StoreRepository интерфейс репозитория магазинов (проверка владельца)
type StoreRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
