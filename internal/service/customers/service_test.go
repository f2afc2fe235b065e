package customers

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
	customerRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/customer"
	storeRepo "github.com/m04kA/SMC-StoreAdmin/internal/infra/storage/store"
	"github.com/m04kA/SMC-StoreAdmin/internal/service/customers/models"
	"github.com/m04kA/SMC-StoreAdmin/pkg/logger"
)

type fakeStores map[uuid.UUID]*domain.Store

func (f fakeStores) GetByID(_ context.Context, id uuid.UUID) (*domain.Store, error) {
	if s, ok := f[id]; ok {
		return s, nil
	}
	return nil, storeRepo.ErrStoreNotFound
}

type fakeCustomers struct {
	items map[uuid.UUID]*domain.Customer
}

func (f *fakeCustomers) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	f.items[c.ID] = c
	return c, nil
}

func (f *fakeCustomers) GetByID(_ context.Context, storeID, id uuid.UUID) (*domain.Customer, error) {
	c, ok := f.items[id]
	if !ok || c.StoreID != storeID {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return c, nil
}

func (f *fakeCustomers) ListByStore(_ context.Context, storeID uuid.UUID) ([]*domain.Customer, error) {
	out := make([]*domain.Customer, 0)
	for _, c := range f.items {
		if c.StoreID == storeID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCustomers) Update(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	existing, ok := f.items[c.ID]
	if !ok || existing.StoreID != c.StoreID {
		return nil, customerRepo.ErrCustomerNotFound
	}
	f.items[c.ID] = c
	return c, nil
}

func (f *fakeCustomers) Delete(_ context.Context, storeID, id uuid.UUID) error {
	c, ok := f.items[id]
	if !ok || c.StoreID != storeID {
		return customerRepo.ErrCustomerNotFound
	}
	delete(f.items, id)
	return nil
}

func newTestService() (*Service, *fakeCustomers, *domain.Store) {
	store := &domain.Store{ID: uuid.New(), OwnerID: uuid.New()}
	customers := &fakeCustomers{items: map[uuid.UUID]*domain.Customer{}}
	svc := NewService(customers, fakeStores{store.ID: store}, logger.NewWithWriter(io.Discard, logrus.InfoLevel))
	return svc, customers, store
}

func TestCreate_NormalizesPhone(t *testing.T) {
	svc, repo, store := newTestService()

	resp, err := svc.Create(context.Background(), &models.CustomerRequest{
		UserID:  store.OwnerID,
		StoreID: store.ID,
		Name:    " Maria Silva ",
		Email:   "maria@example.com",
		Phone:   "(11) 99999-8888",
	})

	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", resp.Name)
	assert.Equal(t, "11999998888", resp.Phone)
	assert.Equal(t, "(11) 99999-8888", resp.PhoneDisplay)
	assert.Len(t, repo.items, 1)
}

func TestCreate_Validation(t *testing.T) {
	svc, _, store := newTestService()

	tests := []struct {
		name string
		req  models.CustomerRequest
	}{
		{name: "empty name", req: models.CustomerRequest{Email: "a@b.com", Phone: "1133334444"}},
		{name: "bad email", req: models.CustomerRequest{Name: "Ana", Email: "ana", Phone: "1133334444"}},
		{name: "short phone", req: models.CustomerRequest{Name: "Ana", Email: "a@b.com", Phone: "(11) 3333"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			req.UserID = store.OwnerID
			req.StoreID = store.ID

			_, err := svc.Create(context.Background(), &req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_AccessDenied(t *testing.T) {
	svc, _, store := newTestService()

	_, err := svc.Create(context.Background(), &models.CustomerRequest{
		UserID:  uuid.New(),
		StoreID: store.ID,
		Name:    "Ana",
		Email:   "ana@example.com",
		Phone:   "1133334444",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestList_UnknownStore(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.List(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestUpdateAndDelete(t *testing.T) {
	svc, repo, store := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CustomerRequest{
		UserID: store.OwnerID, StoreID: store.ID,
		Name: "Ana", Email: "ana@example.com", Phone: "1133334444",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &models.CustomerRequest{
		UserID: store.OwnerID, StoreID: store.ID,
		Name: "Ana Paula", Email: "ana@example.com", Phone: "11 98888-7777",
	})
	require.NoError(t, err)
	assert.Equal(t, "11988887777", updated.Phone)

	list, err := svc.List(ctx, store.ID, store.OwnerID)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	require.NoError(t, svc.Delete(ctx, store.ID, created.ID, store.OwnerID))
	assert.Empty(t, repo.items)

	err = svc.Delete(ctx, store.ID, created.ID, store.OwnerID)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
