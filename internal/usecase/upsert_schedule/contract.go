package upsert_schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
)

// ScheduleRepository интерфейс репозитория записей
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
	Update(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
	GetByIDForUpdate(ctx context.Context, storeID, id uuid.UUID) (*domain.Schedule, error)
}

// StoreRepository интерфейс репозитория магазинов
type StoreRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, storeID, id uuid.UUID) (*domain.Customer, error)
}

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	GetByID(ctx context.Context, storeID, id uuid.UUID) (*domain.Employee, error)
}

// ServiceRepository интерфейс репозитория услуг (каталог магазина)
type ServiceRepository interface {
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
