package employees

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	employeeRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/employee"
	storeRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/store"
	"github.com/m04kA/SMC-StoreAdmin/internal/service/employees/models"
)

// Service сервис для работы с сотрудниками магазина
type Service struct {
	employeeRepo EmployeeRepository
	storeRepo    StoreRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(employeeRepo EmployeeRepository, storeRepo StoreRepository, logger Logger) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		storeRepo:    storeRepo,
		logger:       logger,
	}
}

// List получает сотрудников магазина
func (s *Service) List(ctx context.Context, storeID, userID uuid.UUID) (*models.EmployeeListResponse, error) {
	if err := s.checkStoreAccess(ctx, storeID, userID); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListByStore(ctx, storeID)
	if err != nil {
		s.logger.Error("List: repository error for store=%s: %v", storeID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d employees for store=%s", len(employees), storeID)
	return models.FromDomainEmployeeList(employees), nil
}

// Create создает сотрудника
func (s *Service) Create(ctx context.Context, req *models.EmployeeRequest) (*models.EmployeeResponse, error) {
	s.logger.Info("Create: creating employee for store=%s", req.StoreID)

	if err := s.checkStoreAccess(ctx, req.StoreID, req.UserID); err != nil {
		return nil, err
	}

	employee, err := buildEmployee(req)
	if err != nil {
		s.logger.Warn("Create: validation failed for store=%s: %v", req.StoreID, err)
		return nil, err
	}
	employee.ID = uuid.New()

	created, err := s.employeeRepo.Create(ctx, employee)
	if err != nil {
		s.logger.Error("Create: repository error for store=%s: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created employee id=%s", created.ID)
	return models.FromDomainEmployee(created), nil
}

// Update обновляет сотрудника
func (s *Service) Update(ctx context.Context, employeeID uuid.UUID, req *models.EmployeeRequest) (*models.EmployeeResponse, error) {
	s.logger.Info("Update: updating employee id=%s in store=%s", employeeID, req.StoreID)

	if err := s.checkStoreAccess(ctx, req.StoreID, req.UserID); err != nil {
		return nil, err
	}

	employee, err := buildEmployee(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for employee id=%s: %v", employeeID, err)
		return nil, err
	}
	employee.ID = employeeID

	updated, err := s.employeeRepo.Update(ctx, employee)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("Update: employee id=%s not found", employeeID)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("Update: repository error for employee id=%s: %v", employeeID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated employee id=%s", employeeID)
	return models.FromDomainEmployee(updated), nil
}

// Delete удаляет сотрудника
func (s *Service) Delete(ctx context.Context, storeID, employeeID, userID uuid.UUID) error {
	s.logger.Info("Delete: deleting employee id=%s in store=%s", employeeID, storeID)

	if err := s.checkStoreAccess(ctx, storeID, userID); err != nil {
		return err
	}

	if err := s.employeeRepo.Delete(ctx, storeID, employeeID); err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("Delete: employee id=%s not found", employeeID)
			return ErrEmployeeNotFound
		}
		s.logger.Error("Delete: repository error for employee id=%s: %v", employeeID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted employee id=%s", employeeID)
	return nil
}

// checkStoreAccess проверяет, что пользователь владеет магазином
func (s *Service) checkStoreAccess(ctx context.Context, storeID, userID uuid.UUID) error {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			s.logger.Warn("checkStoreAccess: store id=%s not found", storeID)
			return ErrStoreNotFound
		}
		s.logger.Error("checkStoreAccess: failed to get store id=%s: %v", storeID, err)
		return fmt.Errorf("%w: failed to get store: %v", ErrInternal, err)
	}

	if !store.IsOwnedBy(userID) {
		s.logger.Warn("checkStoreAccess: access denied for user=%s to store id=%s", userID, storeID)
		return ErrAccessDenied
	}

	return nil
}
