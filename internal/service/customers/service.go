package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
	customerRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/customer"
	storeRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/store"
	"github.com/m04kA/SMC-StoreAdmin/internal/service/customers/models"
)

// Service сервис для работы с клиентами магазина
type Service struct {
	customerRepo CustomerRepository
	storeRepo    StoreRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(customerRepo CustomerRepository, storeRepo StoreRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		storeRepo:    storeRepo,
		logger:       logger,
	}
}

// List получает клиентов магазина
func (s *Service) List(ctx context.Context, storeID, userID uuid.UUID) (*models.CustomerListResponse, error) {
	if err := s.checkStoreAccess(ctx, storeID, userID); err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.ListByStore(ctx, storeID)
	if err != nil {
		s.logger.Error("List: repository error for store=%s: %v", storeID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d customers for store=%s", len(customers), storeID)
	return models.FromDomainCustomerList(customers), nil
}

// Create создает клиента
func (s *Service) Create(ctx context.Context, req *models.CustomerRequest) (*models.CustomerResponse, error) {
	s.logger.Info("Create: creating customer for store=%s", req.StoreID)

	if err := s.checkStoreAccess(ctx, req.StoreID, req.UserID); err != nil {
		return nil, err
	}

	customer, err := buildCustomer(req)
	if err != nil {
		s.logger.Warn("Create: validation failed for store=%s: %v", req.StoreID, err)
		return nil, err
	}
	customer.ID = uuid.New()

	created, err := s.customerRepo.Create(ctx, customer)
	if err != nil {
		s.logger.Error("Create: repository error for store=%s: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created customer id=%s", created.ID)
	return models.FromDomainCustomer(created), nil
}

// Update обновляет клиента
func (s *Service) Update(ctx context.Context, customerID uuid.UUID, req *models.CustomerRequest) (*models.CustomerResponse, error) {
	s.logger.Info("Update: updating customer id=%s in store=%s", customerID, req.StoreID)

	if err := s.checkStoreAccess(ctx, req.StoreID, req.UserID); err != nil {
		return nil, err
	}

	customer, err := buildCustomer(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for customer id=%s: %v", customerID, err)
		return nil, err
	}
	customer.ID = customerID

	updated, err := s.customerRepo.Update(ctx, customer)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("Update: customer id=%s not found", customerID)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("Update: repository error for customer id=%s: %v", customerID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated customer id=%s", customerID)
	return models.FromDomainCustomer(updated), nil
}

// Delete удаляет клиента
func (s *Service) Delete(ctx context.Context, storeID, customerID, userID uuid.UUID) error {
	s.logger.Info("Delete: deleting customer id=%s in store=%s", customerID, storeID)

	if err := s.checkStoreAccess(ctx, storeID, userID); err != nil {
		return err
	}

	if err := s.customerRepo.Delete(ctx, storeID, customerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("Delete: customer id=%s not found", customerID)
			return ErrCustomerNotFound
		}
		s.logger.Error("Delete: repository error for customer id=%s: %v", customerID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted customer id=%s", customerID)
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

func buildCustomer(req *models.CustomerRequest) (*domain.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is required (max %d characters)", ErrInvalidInput, domain.MaxNameLength)
	}

	email := strings.TrimSpace(req.Email)
	if !domain.ValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	phone, ok := domain.NormalizePhone(req.Phone)
	if !ok {
		return nil, fmt.Errorf("%w: phone must have %d-%d digits", ErrInvalidInput, domain.MinPhoneDigits, domain.MaxPhoneDigits)
	}

	return &domain.Customer{
		StoreID: req.StoreID,
		Name:    name,
		Email:   email,
		Phone:   phone,
	}, nil
}
