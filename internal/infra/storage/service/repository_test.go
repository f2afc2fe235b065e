package service

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
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	s := &domain.Service{
		ID:       uuid.New(),
		StoreID:  uuid.New(),
		Name:     "Corte",
		Value:    29.9,
		Duration: "00:30",
	}

	mock.ExpectQuery(`INSERT INTO services \(id,store_id,name,value,duration\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING created_at, updated_at`).
		WithArgs(s.ID, s.StoreID, s.Name, s.Value, s.Duration).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), s)

	require.NoError(t, err)
	assert.Equal(t, now, created.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByStore_FeedsCatalog(t *testing.T) {
	repo, mock := newRepo(t)
	storeID := uuid.New()
	cutID, beardID := uuid.New(), uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows(columns).
		AddRow(beardID.String(), storeID.String(), "Barba", 59.9, "01:00", now, now).
		AddRow(cutID.String(), storeID.String(), "Corte", 29.9, "00:30", now, now)

	mock.ExpectQuery(`SELECT .* FROM services WHERE store_id = \$1 ORDER BY name ASC`).
		WithArgs(storeID).
		WillReturnRows(rows)

	services, err := repo.ListByStore(context.Background(), storeID)
	require.NoError(t, err)
	require.Len(t, services, 2)

	catalog := domain.Catalog(services)
	assert.Equal(t, 29.9, catalog[cutID.String()].Value)
	assert.Equal(t, "01:00", catalog[beardID.String()].Duration)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`UPDATE services SET`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), &domain.Service{ID: uuid.New(), StoreID: uuid.New(), Name: "Corte"})

	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "not found", affected: 0, wantErr: ErrServiceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			storeID, id := uuid.New(), uuid.New()

			mock.ExpectExec(`DELETE FROM services WHERE id = \$1 AND store_id = \$2`).
				WithArgs(id, storeID).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.Delete(context.Background(), storeID, id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
