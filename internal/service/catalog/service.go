package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	serviceRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/service"
	storeRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/store"
	"github.com/m04kA/SMC-StoreAdmin/internal/service/catalog/models"
)

// Service сервис для работы с каталогом услуг магазина
type Service struct {
	serviceRepo ServiceRepository
	storeRepo   StoreRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, storeRepo StoreRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		storeRepo:   storeRepo,
		logger:      logger,
	}
}

// List получает каталог услуг магазина
func (s *Service) List(ctx context.Context, storeID, userID uuid.UUID) (*models.ServiceListResponse, error) {
	if err := s.checkStoreAccess(ctx, storeID, userID); err != nil {
		return nil, err
	}

	services, err := s.serviceRepo.ListByStore(ctx, storeID)
	if err != nil {
		s.logger.Error("List: repository error for store=%s: %v", storeID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d services for store=%s", len(services), storeID)
	return models.FromDomainServiceList(services), nil
}

// Create создает услугу
func (s *Service) Create(ctx context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service for store=%s", req.StoreID)

	if err := s.checkStoreAccess(ctx, req.StoreID, req.UserID); err != nil {
		return nil, err
	}

	item, err := buildService(req)
	if err != nil {
		s.logger.Warn("Create: validation failed for store=%s: %v", req.StoreID, err)
		return nil, err
	}
	item.ID = uuid.New()

	created, err := s.serviceRepo.Create(ctx, item)
	if err != nil {
		s.logger.Error("Create: repository error for store=%s: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%s", created.ID)
	return models.FromDomainService(created), nil
}

// Update обновляет услугу
func (s *Service) Update(ctx context.Context, serviceID uuid.UUID, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%s in store=%s", serviceID, req.StoreID)

	if err := s.checkStoreAccess(ctx, req.StoreID, req.UserID); err != nil {
		return nil, err
	}

	item, err := buildService(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for service id=%s: %v", serviceID, err)
		return nil, err
	}
	item.ID = serviceID

	updated, err := s.serviceRepo.Update(ctx, item)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%s not found", serviceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated service id=%s", serviceID)
	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу
func (s *Service) Delete(ctx context.Context, storeID, serviceID, userID uuid.UUID) error {
	s.logger.Info("Delete: deleting service id=%s in store=%s", serviceID, storeID)

	if err := s.checkStoreAccess(ctx, storeID, userID); err != nil {
		return err
	}

	if err := s.serviceRepo.Delete(ctx, storeID, serviceID); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Delete: service id=%s not found", serviceID)
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for service id=%s: %v", serviceID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted service id=%s", serviceID)
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
