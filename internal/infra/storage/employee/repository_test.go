package employee

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

func TestRepository_ListByStore_OptionalContacts(t *testing.T) {
	repo, mock := newRepo(t)
	storeID := uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows(columns).
		AddRow(uuid.NewString(), storeID.String(), "Ana", "ana@example.com", "Manicure", nil, nil, "full", 0.0, now, now).
		AddRow(uuid.NewString(), storeID.String(), "Bruno", "bruno@example.com", "Barbeiro", "11987654321", "12345678901", "percentage", 40.0, now, now)

	mock.ExpectQuery(`SELECT .* FROM employees WHERE store_id = \$1 ORDER BY name ASC`).
		WithArgs(storeID).
		WillReturnRows(rows)

	employees, err := repo.ListByStore(context.Background(), storeID)

	require.NoError(t, err)
	require.Len(t, employees, 2)

	assert.Nil(t, employees[0].Phone)
	assert.Nil(t, employees[0].CPF)
	assert.Equal(t, domain.CommissionFull, employees[0].CommissionType)

	require.NotNil(t, employees[1].CPF)
	assert.Equal(t, "12345678901", *employees[1].CPF)
	assert.Equal(t, domain.CommissionPercentage, employees[1].CommissionType)
	assert.Equal(t, 40.0, employees[1].CommissionValue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .* FROM employees WHERE`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`UPDATE employees SET`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), &domain.Employee{
		ID:             uuid.New(),
		StoreID:        uuid.New(),
		Name:           "Ana",
		CommissionType: domain.CommissionFull,
	})

	assert.ErrorIs(t, err, ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`DELETE FROM employees WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
