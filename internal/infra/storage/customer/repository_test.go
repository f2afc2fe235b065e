package customer

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StoreAdmin/internal/domain"
	"github.com/m04kA/SMC-StoreAdmin/pkg/dbmetrics"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	c := &domain.Customer{
		ID:      uuid.New(),
		StoreID: uuid.New(),
		Name:    "Maria",
		Email:   "maria@example.com",
		Phone:   "11999998888",
	}

	mock.ExpectQuery(`INSERT INTO customers \(id,store_id,name,email,phone\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING created_at, updated_at`).
		WithArgs(c.ID, c.StoreID, c.Name, c.Email, c.Phone).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), c)

	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .* FROM customers WHERE`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrCustomerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByStore(t *testing.T) {
	repo, mock := newRepo(t)
	storeID := uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows(columns).
		AddRow(uuid.NewString(), storeID.String(), "Ana", "ana@example.com", "1133334444", now, now).
		AddRow(uuid.NewString(), storeID.String(), "Bruno", "bruno@example.com", "11999998888", now, now)

	mock.ExpectQuery(`SELECT .* FROM customers WHERE store_id = \$1 ORDER BY created_at DESC`).
		WithArgs(storeID).
		WillReturnRows(rows)

	customers, err := repo.ListByStore(context.Background(), storeID)

	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Ana", customers[0].Name)
	assert.Equal(t, "11999998888", customers[1].Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`DELETE FROM customers WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrCustomerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UsesTransactionFromContext(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := dbmetrics.Wrap(db, nil)
	repo := NewRepository(wrapped)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM customers WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := wrapped.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	ctx := dbmetrics.WithTx(context.Background(), tx)
	require.NoError(t, repo.Delete(ctx, uuid.New(), uuid.New()))
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}
