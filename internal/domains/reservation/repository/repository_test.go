package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"tablebook/infras/otel/mocks"
	"tablebook/infras/postgres"
	"tablebook/internal/domains/reservation/model"
	"tablebook/internal/domains/reservation/repository"
	restaurantModel "tablebook/internal/domains/restaurant/model"
	sharedModel "tablebook/shared/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	restaurantID = "5f0c6a0e-7c1b-4b7e-9a53-0d4f3c2b1a10"
	slotKey      = restaurantID + "|2025-06-30|19:00|twoSeater"
)

var (
	lockQuery   = regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")
	countQuery  = regexp.QuoteMeta("SELECT COUNT(reservations.id) FROM reservations")
	insertQuery = regexp.QuoteMeta("INSERT INTO reservations")
)

func newRepository(t *testing.T) (repository.Reservation, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel()), mock
}

func newReservation() model.Reservation {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	return model.Reservation{
		ID:             "0b7d1f4e-2a8c-4d5e-8f61-3c9a7b2e4d01",
		UserID:         "9a3e5c71-6b2d-4f8a-b0c4-1e7d9f2a3b55",
		RestaurantID:   restaurantID,
		Date:           time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Time:           "19:00",
		TableType:      restaurantModel.TableTypeTwoSeater,
		NumberOfGuests: 2,
		Metadata:       sharedModel.NewMetadata(now, "alice"),
	}
}

func expectCount(mock sqlmock.Sqlmock, count int) {
	mock.ExpectPrepare(countQuery).
		ExpectQuery().
		WithArgs(restaurantID, "2025-06-30", "19:00", "twoSeater").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
}

func TestInsertWithinCapacity(t *testing.T) {
	t.Run("locks counts and inserts in one transaction", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(lockQuery).WithArgs(slotKey).WillReturnResult(sqlmock.NewResult(0, 0))
		expectCount(mock, 1)
		mock.ExpectExec(insertQuery).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		inserted, err := repo.InsertWithinCapacity(context.Background(), newReservation(), 2)

		require.NoError(t, err)
		assert.True(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("full slot rolls back without inserting", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(lockQuery).WithArgs(slotKey).WillReturnResult(sqlmock.NewResult(0, 0))
		expectCount(mock, 2)
		mock.ExpectRollback()

		inserted, err := repo.InsertWithinCapacity(context.Background(), newReservation(), 2)

		require.NoError(t, err)
		assert.False(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lock failure rolls back and returns the error", func(t *testing.T) {
		repo, mock := newRepository(t)
		lockErr := errors.New("lock timeout")

		mock.ExpectBegin()
		mock.ExpectExec(lockQuery).WithArgs(slotKey).WillReturnError(lockErr)
		mock.ExpectRollback()

		inserted, err := repo.InsertWithinCapacity(context.Background(), newReservation(), 2)

		require.Error(t, err)
		assert.ErrorIs(t, err, lockErr)
		assert.Contains(t, err.Error(), "failed to lock slot "+slotKey)
		assert.False(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count failure rolls back and returns the error", func(t *testing.T) {
		repo, mock := newRepository(t)
		countErr := errors.New("connection reset")

		mock.ExpectBegin()
		mock.ExpectExec(lockQuery).WithArgs(slotKey).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectPrepare(countQuery).ExpectQuery().WillReturnError(countErr)
		mock.ExpectRollback()

		inserted, err := repo.InsertWithinCapacity(context.Background(), newReservation(), 2)

		require.Error(t, err)
		assert.ErrorIs(t, err, countErr)
		assert.False(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back and returns the error", func(t *testing.T) {
		repo, mock := newRepository(t)
		insertErr := errors.New("duplicate key")

		mock.ExpectBegin()
		mock.ExpectExec(lockQuery).WithArgs(slotKey).WillReturnResult(sqlmock.NewResult(0, 0))
		expectCount(mock, 0)
		mock.ExpectExec(insertQuery).WillReturnError(insertErr)
		mock.ExpectRollback()

		inserted, err := repo.InsertWithinCapacity(context.Background(), newReservation(), 2)

		require.Error(t, err)
		assert.ErrorIs(t, err, insertErr)
		assert.False(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
