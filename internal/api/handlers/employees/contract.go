package employees

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/service/employees/models"
)

type EmployeeService interface {
	List(ctx context.Context, storeID, userID uuid.UUID) (*models.EmployeeListResponse, error)
	Create(ctx context.Context, req *models.EmployeeRequest) (*models.EmployeeResponse, error)
	Update(ctx context.Context, employeeID uuid.UUID, req *models.EmployeeRequest) (*models.EmployeeResponse, error)
	Delete(ctx context.Context, storeID, employeeID, userID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
