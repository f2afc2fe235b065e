package employees

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
)

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	GetByID(ctx context.Context, storeID, id uuid.UUID) (*domain.Employee, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
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
