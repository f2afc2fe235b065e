package calculate_totals

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
	storeRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/store"
	"github.com/m04kA/SMC-StoreAdmin/pkg/logger"
)

type stubStores map[uuid.UUID]*domain.Store

func (s stubStores) GetByID(_ context.Context, id uuid.UUID) (*domain.Store, error) {
	if store, ok := s[id]; ok {
		return store, nil
	}
	return nil, storeRepo.ErrStoreNotFound
}

type stubServices []*domain.Service

func (s stubServices) ListByStore(_ context.Context, _ uuid.UUID) ([]*domain.Service, error) {
	return s, nil
}

func newUseCase(services ...*domain.Service) (*UseCase, *domain.Store) {
	store := &domain.Store{ID: uuid.New(), OwnerID: uuid.New()}
	uc := NewUseCase(
		stubStores{store.ID: store},
		stubServices(services),
		logger.NewWithWriter(io.Discard, logrus.InfoLevel),
	)
	return uc, store
}

func TestExecute_SumsSelection(t *testing.T) {
	a := &domain.Service{ID: uuid.New(), Value: 29.9, Duration: "00:30"}
	b := &domain.Service{ID: uuid.New(), Value: 59.9, Duration: "01:00"}
	uc, store := newUseCase(a, b)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:     store.OwnerID,
		StoreID:    store.ID,
		ServiceIDs: []uuid.UUID{b.ID, a.ID},
	})

	require.NoError(t, err)
	assert.Equal(t, 89.8, resp.Total)
	assert.Equal(t, int64(8980), resp.TotalCents)
	assert.Equal(t, "R$ 89,80", resp.TotalDisplay)
	assert.Equal(t, 90, resp.Minutes)
	assert.Equal(t, "01:30", resp.Duration)
	assert.Equal(t, []uuid.UUID{b.ID, a.ID}, resp.ServiceIDs)
	assert.Empty(t, resp.MissingIDs)
}

func TestExecute_EmptySelection(t *testing.T) {
	uc, store := newUseCase()

	resp, err := uc.Execute(context.Background(), &Request{UserID: store.OwnerID, StoreID: store.ID})

	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Total)
	assert.Equal(t, "00:00", resp.Duration)
	assert.Equal(t, "R$ 0,00", resp.TotalDisplay)
}

func TestExecute_ReportsMissing(t *testing.T) {
	a := &domain.Service{ID: uuid.New(), Value: 10, Duration: "1h"}
	uc, store := newUseCase(a)
	missing := uuid.New()

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:     store.OwnerID,
		StoreID:    store.ID,
		ServiceIDs: []uuid.UUID{a.ID, missing, a.ID},
	})

	require.NoError(t, err)
	assert.Equal(t, 10.0, resp.Total)
	assert.Equal(t, "01:00", resp.Duration)
	assert.Equal(t, []uuid.UUID{a.ID}, resp.ServiceIDs)
	assert.Equal(t, []uuid.UUID{missing}, resp.MissingIDs)
}

func TestExecute_AccessChecks(t *testing.T) {
	uc, store := newUseCase()

	_, err := uc.Execute(context.Background(), &Request{UserID: uuid.New(), StoreID: store.ID})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = uc.Execute(context.Background(), &Request{UserID: store.OwnerID, StoreID: uuid.New()})
	assert.ErrorIs(t, err, ErrStoreNotFound)
}
