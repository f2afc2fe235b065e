package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, storeID, id uuid.UUID) (*domain.Service, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Service, error)
	Update(ctx context.Context, service *domain.Service) (*domain.Service, error)
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
