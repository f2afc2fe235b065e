package customers

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/service/customers/models"
)

type CustomerService interface {
	List(ctx context.Context, storeID, userID uuid.UUID) (*models.CustomerListResponse, error)
	Create(ctx context.Context, req *models.CustomerRequest) (*models.CustomerResponse, error)
	Update(ctx context.Context, customerID uuid.UUID, req *models.CustomerRequest) (*models.CustomerResponse, error)
	Delete(ctx context.Context, storeID, customerID, userID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
