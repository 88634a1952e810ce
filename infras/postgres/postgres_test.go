package postgres_test

import (
	"context"
	"errors"
	"testing"

	"tablebook/infras/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")

	return &postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mock
}

func TestWithTransaction(t *testing.T) {
	t.Run("commits when fn succeeds", func(t *testing.T) {
		conn, mock := newConnection(t)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE restaurants").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := conn.WithTransaction(context.Background(), func(tx *sqlx.Tx) error {
			_, err := tx.ExecContext(context.Background(), "UPDATE restaurants SET name = 'x'")
			return err
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and returns the fn error", func(t *testing.T) {
		conn, mock := newConnection(t)
		fnErr := errors.New("boom")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := conn.WithTransaction(context.Background(), func(*sqlx.Tx) error {
			return fnErr
		})

		assert.Equal(t, fnErr, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns the fn error when rollback also fails", func(t *testing.T) {
		conn, mock := newConnection(t)
		fnErr := errors.New("boom")

		mock.ExpectBegin()
		mock.ExpectRollback().WillReturnError(errors.New("connection lost"))

		err := conn.WithTransaction(context.Background(), func(*sqlx.Tx) error {
			return fnErr
		})

		assert.Equal(t, fnErr, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps a begin failure without calling fn", func(t *testing.T) {
		conn, mock := newConnection(t)
		beginErr := errors.New("too many connections")

		mock.ExpectBegin().WillReturnError(beginErr)

		called := false
		err := conn.WithTransaction(context.Background(), func(*sqlx.Tx) error {
			called = true
			return nil
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, beginErr)
		assert.Contains(t, err.Error(), "failed to begin transaction")
		assert.False(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps a commit failure", func(t *testing.T) {
		conn, mock := newConnection(t)
		commitErr := errors.New("serialization failure")

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(commitErr)

		err := conn.WithTransaction(context.Background(), func(*sqlx.Tx) error {
			return nil
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, commitErr)
		assert.Contains(t, err.Error(), "failed to commit transaction")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and repanics when fn panics", func(t *testing.T) {
		conn, mock := newConnection(t)

		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.PanicsWithValue(t, "fn exploded", func() {
			_ = conn.WithTransaction(context.Background(), func(*sqlx.Tx) error {
				panic("fn exploded")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPing(t *testing.T) {
	t.Run("nil pools are reported", func(t *testing.T) {
		err := (&postgres.Connection{}).Ping(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not established")
	})
}
