package migrations

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames_Sorted(t *testing.T) {
	names, err := Names()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"0001_stores.sql",
		"0002_people.sql",
		"0003_services.sql",
		"0004_schedules.sql",
	}, names)
}

func TestApply_ExecutesAllMigrations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS stores").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS customers").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS services").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schedules").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Apply(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_StopsOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS stores").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS customers").WillReturnError(errors.New("permission denied"))

	err = Apply(context.Background(), db)

	assert.ErrorIs(t, err, ErrApply)
	assert.Contains(t, err.Error(), "0002_people.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}
