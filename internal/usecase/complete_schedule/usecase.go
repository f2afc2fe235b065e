package complete_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	scheduleRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/schedule"
	storeRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/store"
)

const actionCompleted = "completed"

// UseCase use case завершения записи
type UseCase struct {
	scheduleRepo ScheduleRepository
	storeRepo    StoreRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	storeRepo StoreRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		storeRepo:    storeRepo,
		txManager:    txManager,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute отмечает запись выполненной
// Завершить можно только начиная с дня записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CompleteSchedule: user=%s, store=%s, schedule=%s", req.UserID, req.StoreID, req.ScheduleID)

	// 1. Проверяем владельца магазина
	store, err := uc.storeRepo.GetByID(ctx, req.StoreID)
	if err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			uc.logger.Warn("CompleteSchedule: store id=%s not found", req.StoreID)
			return nil, ErrStoreNotFound
		}
		uc.logger.Error("CompleteSchedule: failed to get store id=%s: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: failed to get store: %v", ErrInternal, err)
	}
	if !store.IsOwnedBy(req.UserID) {
		uc.logger.Warn("CompleteSchedule: access denied for user=%s to store id=%s", req.UserID, req.StoreID)
		return nil, ErrAccessDenied
	}

	var completedAt time.Time

	// 2. Блокируем запись и меняем статус в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		schedule, err := uc.scheduleRepo.GetByIDForUpdate(txCtx, req.StoreID, req.ScheduleID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("CompleteSchedule: schedule id=%s not found", req.ScheduleID)
				return ErrScheduleNotFound
			}
			uc.logger.Error("CompleteSchedule: failed to get schedule id=%s: %v", req.ScheduleID, err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		if schedule.Completed {
			uc.logger.Warn("CompleteSchedule: schedule id=%s already completed", schedule.ID)
			return ErrAlreadyCompleted
		}

		now := uc.timeProvider.Now()
		if !schedule.CanBeCompleted(now) {
			uc.logger.Warn("CompleteSchedule: schedule id=%s is on %s, too early", schedule.ID, schedule.ScheduledDate.Format("2006-01-02"))
			return ErrTooEarly
		}

		if err := uc.scheduleRepo.MarkCompleted(txCtx, req.StoreID, schedule.ID, now); err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				return ErrScheduleNotFound
			}
			uc.logger.Error("CompleteSchedule: failed to mark schedule id=%s completed: %v", schedule.ID, err)
			return fmt.Errorf("%w: failed to mark completed: %v", ErrInternal, err)
		}

		completedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.IncScheduleSaved(actionCompleted)
	uc.logger.Info("CompleteSchedule: schedule id=%s completed", req.ScheduleID)

	return &Response{
		ScheduleID:  req.ScheduleID,
		CompletedAt: completedAt,
	}, nil
}
