package stores

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
	storeRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/store"
	"github.com/m04kA/SMC-StoreAdmin/internal/service/stores/models"
)

// Service сервис для работы с магазинами
type Service struct {
	storeRepo StoreRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса магазинов
func NewService(storeRepo StoreRepository, logger Logger) *Service {
	return &Service{
		storeRepo: storeRepo,
		logger:    logger,
	}
}

// Create создает магазин владельца
func (s *Service) Create(ctx context.Context, req *models.CreateStoreRequest) (*models.StoreResponse, error) {
	s.logger.Info("Create: creating store for owner=%s, name=%q", req.OwnerID, req.Name)

	store, err := buildStore(req.Name, req.Slug, req.Phone)
	if err != nil {
		s.logger.Warn("Create: validation failed for owner=%s: %v", req.OwnerID, err)
		return nil, err
	}
	store.ID = uuid.New()
	store.OwnerID = req.OwnerID

	created, err := s.storeRepo.Create(ctx, store)
	if err != nil {
		if errors.Is(err, storeRepo.ErrSlugTaken) {
			s.logger.Warn("Create: slug=%s already taken", store.Slug)
			return nil, ErrSlugTaken
		}
		s.logger.Error("Create: repository error for owner=%s: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created store id=%s, slug=%s", created.ID, created.Slug)
	return models.FromDomainStore(created), nil
}

// Update обновляет данные магазина, доступно только владельцу
func (s *Service) Update(ctx context.Context, storeID uuid.UUID, req *models.UpdateStoreRequest) (*models.StoreResponse, error) {
	s.logger.Info("Update: updating store id=%s by user=%s", storeID, req.UserID)

	current, err := s.getOwned(ctx, storeID, req.UserID)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(req.Name, req.Slug, req.Phone)
	if err != nil {
		s.logger.Warn("Update: validation failed for store id=%s: %v", storeID, err)
		return nil, err
	}
	store.ID = current.ID
	store.OwnerID = current.OwnerID

	updated, err := s.storeRepo.Update(ctx, store)
	if err != nil {
		switch {
		case errors.Is(err, storeRepo.ErrSlugTaken):
			s.logger.Warn("Update: slug=%s already taken", store.Slug)
			return nil, ErrSlugTaken
		case errors.Is(err, storeRepo.ErrStoreNotFound):
			return nil, ErrStoreNotFound
		}
		s.logger.Error("Update: repository error for store id=%s: %v", storeID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated store id=%s", storeID)
	return models.FromDomainStore(updated), nil
}

// GetByID получает магазин, доступно только владельцу
func (s *Service) GetByID(ctx context.Context, storeID, userID uuid.UUID) (*models.StoreResponse, error) {
	s.logger.Info("GetByID: fetching store id=%s for user=%s", storeID, userID)

	store, err := s.getOwned(ctx, storeID, userID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainStore(store), nil
}

// ListByOwner получает магазины пользователя
func (s *Service) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*models.StoreResponse, error) {
	stores, err := s.storeRepo.ListByOwner(ctx, userID)
	if err != nil {
		s.logger.Error("ListByOwner: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByOwner - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByOwner: fetched %d stores for user=%s", len(stores), userID)
	return models.FromDomainStoreList(stores), nil
}

// CheckSlug сообщает, свободен ли slug
func (s *Service) CheckSlug(ctx context.Context, slug string) (*models.SlugAvailabilityResponse, error) {
	if !ValidSlug(slug) {
		return nil, fmt.Errorf("%w: slug must contain only lowercase letters, digits and hyphens", ErrInvalidInput)
	}

	exists, err := s.storeRepo.ExistsBySlug(ctx, slug)
	if err != nil {
		s.logger.Error("CheckSlug: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: CheckSlug - repository error: %v", ErrInternal, err)
	}

	return &models.SlugAvailabilityResponse{Slug: slug, Available: !exists}, nil
}

func (s *Service) getOwned(ctx context.Context, storeID, userID uuid.UUID) (*domain.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			s.logger.Warn("store id=%s not found", storeID)
			return nil, ErrStoreNotFound
		}
		s.logger.Error("failed to get store id=%s: %v", storeID, err)
		return nil, fmt.Errorf("%w: failed to get store: %v", ErrInternal, err)
	}

	if !store.IsOwnedBy(userID) {
		s.logger.Warn("access denied for user=%s to store id=%s", userID, storeID)
		return nil, ErrAccessDenied
	}

	return store, nil
}

func buildStore(name, slug, phone string) (*domain.Store, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is required (max %d characters)", ErrInvalidInput, domain.MaxNameLength)
	}

	slug = strings.TrimSpace(slug)
	if slug == "" {
		slug = Slugify(name)
	}
	if !ValidSlug(slug) {
		return nil, fmt.Errorf("%w: slug must contain only lowercase letters, digits and hyphens", ErrInvalidInput)
	}

	digits, ok := domain.NormalizePhone(phone)
	if !ok {
		return nil, fmt.Errorf("%w: phone must have %d-%d digits", ErrInvalidInput, domain.MinPhoneDigits, domain.MaxPhoneDigits)
	}

	return &domain.Store{
		Name:  name,
		Slug:  slug,
		Phone: digits,
	}, nil
}
