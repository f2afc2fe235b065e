package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/service/catalog/models"
)

type CatalogService interface {
	List(ctx context.Context, storeID, userID uuid.UUID) (*models.ServiceListResponse, error)
	Create(ctx context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error)
	Update(ctx context.Context, serviceID uuid.UUID, req *models.ServiceRequest) (*models.ServiceResponse, error)
	Delete(ctx context.Context, storeID, serviceID, userID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
