package txmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StoreAdmin/pkg/dbmetrics"
)

func newManager(t *testing.T) (*TransactionManager, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewTransactionManager(dbmetrics.Wrap(db, nil)), mock
}

func TestDo_CommitsOnSuccess(t *testing.T) {
	tm, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_RollsBackOnError(t *testing.T) {
	tm, mock := newManager(t)
	errBoom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_NestedCallJoinsOuterTransaction(t *testing.T) {
	tm, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		return tm.DoSerializable(ctx, func(ctx context.Context) error {
			return nil
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RetriesOnSerializationFailure(t *testing.T) {
	tm, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(&pq.Error{Code: serializationFailure})
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_GivesUpAfterMaxAttempts(t *testing.T) {
	tm, mock := newManager(t)

	for i := 0; i < maxSerializableAttempts; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(&pq.Error{Code: serializationFailure})
	}

	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
