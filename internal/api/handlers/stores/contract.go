package stores

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/service/stores/models"
)

type StoreService interface {
	Create(ctx context.Context, req *models.CreateStoreRequest) (*models.StoreResponse, error)
	Update(ctx context.Context, storeID uuid.UUID, req *models.UpdateStoreRequest) (*models.StoreResponse, error)
	GetByID(ctx context.Context, storeID, userID uuid.UUID) (*models.StoreResponse, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*models.StoreResponse, error)
	CheckSlug(ctx context.Context, slug string) (*models.SlugAvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
