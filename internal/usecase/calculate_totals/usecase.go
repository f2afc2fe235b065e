package calculate_totals

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
	storeRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/store"
	"github.com/m04kA/SMC-StoreAdmin/pkg/mask"
	"github.com/m04kA/SMC-StoreAdmin/pkg/totals"
)

// UseCase use case предварительного расчёта стоимости и длительности записи
// Ничего не сохраняет: форма записи вызывает его при каждом изменении выбора услуг
type UseCase struct {
	storeRepo   StoreRepository
	serviceRepo ServiceRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(storeRepo StoreRepository, serviceRepo ServiceRepository, logger Logger) *UseCase {
	return &UseCase{
		storeRepo:   storeRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Execute считает итоги по текущему каталогу магазина
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculateTotals: user=%s, store=%s, services=%d", req.UserID, req.StoreID, len(req.ServiceIDs))

	store, err := uc.storeRepo.GetByID(ctx, req.StoreID)
	if err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			uc.logger.Warn("CalculateTotals: store id=%s not found", req.StoreID)
			return nil, ErrStoreNotFound
		}
		uc.logger.Error("CalculateTotals: failed to get store id=%s: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: failed to get store: %v", ErrInternal, err)
	}
	if !store.IsOwnedBy(req.UserID) {
		uc.logger.Warn("CalculateTotals: access denied for user=%s to store id=%s", req.UserID, req.StoreID)
		return nil, ErrAccessDenied
	}

	services, err := uc.serviceRepo.ListByStore(ctx, req.StoreID)
	if err != nil {
		uc.logger.Error("CalculateTotals: failed to load catalog for store=%s: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: failed to load catalog: %v", ErrInternal, err)
	}

	items := domain.Catalog(services)
	selected := make([]string, len(req.ServiceIDs))
	for i, id := range req.ServiceIDs {
		selected[i] = id.String()
	}

	result := totals.Aggregate(selected, items)
	found := totals.Found(selected, items)

	resp := &Response{
		Total:        result.Total,
		TotalCents:   result.TotalCents,
		TotalDisplay: mask.Format(strconv.FormatInt(result.TotalCents, 10), mask.Currency),
		Minutes:      result.Minutes,
		Duration:     result.Duration,
		ServiceIDs:   make([]uuid.UUID, 0, len(found)),
		MissingIDs:   make([]uuid.UUID, 0),
	}

	present := make(map[string]struct{}, len(found))
	for _, id := range found {
		present[id] = struct{}{}
	}
	seen := make(map[uuid.UUID]struct{}, len(req.ServiceIDs))
	for _, id := range req.ServiceIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := present[id.String()]; ok {
			resp.ServiceIDs = append(resp.ServiceIDs, id)
		} else {
			resp.MissingIDs = append(resp.MissingIDs, id)
		}
	}

	if len(resp.MissingIDs) > 0 {
		uc.logger.Warn("CalculateTotals: %d selected services missing from catalog of store=%s", len(resp.MissingIDs), req.StoreID)
	}

	return resp, nil
}
