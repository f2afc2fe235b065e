package calculate_totals

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
)

// StoreRepository интерфейс репозитория магазинов
type StoreRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error)
}

// ServiceRepository интерфейс репозитория услуг (каталог магазина)
type ServiceRepository interface {
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
