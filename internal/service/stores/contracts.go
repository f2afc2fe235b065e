package stores

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
)

// StoreRepository интерфейс репозитория магазинов
type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) (*domain.Store, error)
	Update(ctx context.Context, store *domain.Store) (*domain.Store, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Store, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
