package schedules

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/schedule"
	storeRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/store"
	"github.com/m04kA/SMC-StoreAdmin/internal/service/schedules/models"
)

// Service сервис для чтения и удаления записей
// Создание, изменение и завершение записей - в usecase/upsert_schedule и usecase/complete_schedule
type Service struct {
	scheduleRepo ScheduleRepository
	storeRepo    StoreRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(scheduleRepo ScheduleRepository, storeRepo StoreRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		storeRepo:    storeRepo,
		logger:       logger,
	}
}

// List получает записи магазина, опционально за конкретный день
func (s *Service) List(ctx context.Context, req *models.ListSchedulesRequest) (*models.ScheduleListResponse, error) {
	if req.Date != nil {
		s.logger.Info("List: fetching schedules for store=%s, date=%s", req.StoreID, req.Date.Format(domain.DateFormat))
	} else {
		s.logger.Info("List: fetching schedules for store=%s", req.StoreID)
	}

	if err := s.checkStoreAccess(ctx, req.StoreID, req.UserID); err != nil {
		return nil, err
	}

	schedules, err := s.scheduleRepo.ListByStore(ctx, domain.ScheduleFilter{
		StoreID: req.StoreID,
		Date:    req.Date,
	})
	if err != nil {
		s.logger.Error("List: repository error for store=%s: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d schedules for store=%s", len(schedules), req.StoreID)
	return models.FromDomainScheduleList(schedules), nil
}

// GetByID получает запись
func (s *Service) GetByID(ctx context.Context, storeID, scheduleID, userID uuid.UUID) (*models.ScheduleResponse, error) {
	s.logger.Info("GetByID: fetching schedule id=%s in store=%s", scheduleID, storeID)

	if err := s.checkStoreAccess(ctx, storeID, userID); err != nil {
		return nil, err
	}

	schedule, err := s.scheduleRepo.GetByID(ctx, storeID, scheduleID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetByID: schedule id=%s not found", scheduleID)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetByID: repository error for schedule id=%s: %v", scheduleID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(schedule), nil
}

// Delete удаляет запись
func (s *Service) Delete(ctx context.Context, storeID, scheduleID, userID uuid.UUID) error {
	s.logger.Info("Delete: deleting schedule id=%s in store=%s", scheduleID, storeID)

	if err := s.checkStoreAccess(ctx, storeID, userID); err != nil {
		return err
	}

	if err := s.scheduleRepo.Delete(ctx, storeID, scheduleID); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Delete: schedule id=%s not found", scheduleID)
			return ErrScheduleNotFound
		}
		s.logger.Error("Delete: repository error for schedule id=%s: %v", scheduleID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted schedule id=%s", scheduleID)
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
