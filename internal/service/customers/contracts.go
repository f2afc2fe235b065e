package customers

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, storeID, id uuid.UUID) (*domain.Customer, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
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
