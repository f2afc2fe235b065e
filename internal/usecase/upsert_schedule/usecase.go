package upsert_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
	customerRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/customer"
	employeeRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/employee"
	scheduleRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/schedule"
	storeRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/store"
	"github.com/m04kA/SMC-StoreAdmin/pkg/totals"
)

const (
	actionCreated = "created"
	actionUpdated = "updated"
)

// UseCase use case создания и изменения записи
type UseCase struct {
	scheduleRepo ScheduleRepository
	storeRepo    StoreRepository
	customerRepo CustomerRepository
	employeeRepo EmployeeRepository
	serviceRepo  ServiceRepository
	txManager    TransactionManager
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	storeRepo StoreRepository,
	customerRepo CustomerRepository,
	employeeRepo EmployeeRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		storeRepo:    storeRepo,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute сохраняет запись
// Итоговая стоимость и длительность пересчитываются по текущему каталогу магазина
// Всё выполняется в сериализуемой транзакции, чтобы каталог не изменился между расчётом и записью
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpsertSchedule: user=%s, store=%s, update=%t, customer=%s, employee=%s, services=%d",
		req.UserID, req.StoreID, req.IsUpdate(), req.CustomerID, req.EmployeeID, len(req.ServiceIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpsertSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем владельца магазина
	if err := uc.checkStoreAccess(ctx, req.StoreID, req.UserID); err != nil {
		return nil, err
	}

	var resp *Response

	// 3. Операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Для изменения блокируем существующую запись
		var existing *domain.Schedule
		if req.IsUpdate() {
			schedule, err := uc.scheduleRepo.GetByIDForUpdate(txCtx, req.StoreID, *req.ScheduleID)
			if err != nil {
				if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
					uc.logger.Warn("UpsertSchedule: schedule id=%s not found", *req.ScheduleID)
					return ErrScheduleNotFound
				}
				uc.logger.Error("UpsertSchedule: failed to get schedule id=%s: %v", *req.ScheduleID, err)
				return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
			}
			if !schedule.CanBeEdited() {
				uc.logger.Warn("UpsertSchedule: schedule id=%s is completed", schedule.ID)
				return ErrScheduleCompleted
			}
			existing = schedule
		}

		// 3.2. Клиент и сотрудник должны принадлежать магазину
		if err := uc.checkParticipants(txCtx, req); err != nil {
			return err
		}

		// 3.3. Загружаем каталог и считаем итоги по актуальным услугам
		services, err := uc.serviceRepo.ListByStore(txCtx, req.StoreID)
		if err != nil {
			uc.logger.Error("UpsertSchedule: failed to load catalog for store=%s: %v", req.StoreID, err)
			return fmt.Errorf("%w: failed to load catalog: %v", ErrInternal, err)
		}

		items := domain.Catalog(services)
		found := totals.Found(idStrings(req.ServiceIDs), items)
		kept, dropped := splitSelection(req.ServiceIDs, found)

		if len(dropped) > 0 {
			uc.logger.Warn("UpsertSchedule: dropping %d services missing from catalog of store=%s: %v",
				len(dropped), req.StoreID, dropped)
		}
		if len(kept) == 0 {
			uc.logger.Warn("UpsertSchedule: none of the selected services exist in store=%s", req.StoreID)
			return ErrNoServices
		}

		result := totals.Aggregate(found, items)
		uc.logger.Info("UpsertSchedule: total=%.2f, duration=%s for %d services", result.Total, result.Duration, len(kept))

		schedule := &domain.Schedule{
			StoreID:       req.StoreID,
			CustomerID:    req.CustomerID,
			EmployeeID:    req.EmployeeID,
			ScheduledDate: req.Date,
			ScheduledTime: req.Time,
			ServiceIDs:    kept,
			Total:         result.Total,
			Duration:      result.Duration,
		}

		// 3.4. Сохраняем
		var saved *domain.Schedule
		if existing != nil {
			schedule.ID = existing.ID
			saved, err = uc.scheduleRepo.Update(txCtx, schedule)
		} else {
			schedule.ID = uuid.New()
			saved, err = uc.scheduleRepo.Create(txCtx, schedule)
		}
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				return ErrScheduleNotFound
			}
			uc.logger.Error("UpsertSchedule: failed to save schedule: %v", err)
			return fmt.Errorf("%w: failed to save schedule: %v", ErrInternal, err)
		}

		resp = &Response{
			Schedule:          saved,
			Created:           existing == nil,
			DroppedServiceIDs: dropped,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	action := actionUpdated
	if resp.Created {
		action = actionCreated
	}
	uc.metrics.IncScheduleSaved(action)

	uc.logger.Info("UpsertSchedule: schedule id=%s %s", resp.Schedule.ID, action)
	return resp, nil
}

func (uc *UseCase) checkParticipants(ctx context.Context, req *Request) error {
	if _, err := uc.customerRepo.GetByID(ctx, req.StoreID, req.CustomerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			uc.logger.Warn("UpsertSchedule: customer id=%s not found in store=%s", req.CustomerID, req.StoreID)
			return ErrCustomerNotFound
		}
		uc.logger.Error("UpsertSchedule: failed to get customer id=%s: %v", req.CustomerID, err)
		return fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	if _, err := uc.employeeRepo.GetByID(ctx, req.StoreID, req.EmployeeID); err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("UpsertSchedule: employee id=%s not found in store=%s", req.EmployeeID, req.StoreID)
			return ErrEmployeeNotFound
		}
		uc.logger.Error("UpsertSchedule: failed to get employee id=%s: %v", req.EmployeeID, err)
		return fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}

	return nil
}

func (uc *UseCase) checkStoreAccess(ctx context.Context, storeID, userID uuid.UUID) error {
	store, err := uc.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			uc.logger.Warn("UpsertSchedule: store id=%s not found", storeID)
			return ErrStoreNotFound
		}
		uc.logger.Error("UpsertSchedule: failed to get store id=%s: %v", storeID, err)
		return fmt.Errorf("%w: failed to get store: %v", ErrInternal, err)
	}

	if !store.IsOwnedBy(userID) {
		uc.logger.Warn("UpsertSchedule: access denied for user=%s to store id=%s", userID, storeID)
		return ErrAccessDenied
	}

	return nil
}
