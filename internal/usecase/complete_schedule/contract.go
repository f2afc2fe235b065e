package complete_schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
)

// ScheduleRepository интерфейс репозитория записей
type ScheduleRepository interface {
	GetByIDForUpdate(ctx context.Context, storeID, id uuid.UUID) (*domain.Schedule, error)
	MarkCompleted(ctx context.Context, storeID, id uuid.UUID, completedAt time.Time) error
}

// StoreRepository интерфейс репозитория магазинов
type StoreRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Metrics счётчик сохранённых записей
type Metrics interface {
	IncScheduleSaved(action string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider возвращает системное время
type RealTimeProvider struct{}

// Now текущее время
func (RealTimeProvider) Now() time.Time {
	return time.Now()
}
