package txmanager

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookEasy-Service/pkg/dbmetrics"
)

func newManager(t *testing.T, retries int) (*TransactionManager, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewTransactionManager(dbmetrics.Plain(sqlDB), retries), mock
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&pq.Error{Code: "40001"}))
	assert.True(t, IsRetryable(fmt.Errorf("wrapped: %w", &pq.Error{Code: "40P01"})))
	assert.False(t, IsRetryable(&pq.Error{Code: "23505"}))
	assert.False(t, IsRetryable(errors.New("boom")))
}

func TestDo_CommitsOnSuccess(t *testing.T) {
	tm, mock := newManager(t, 0)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_RollsBackOnError(t *testing.T) {
	tm, mock := newManager(t, 0)
	fnErr := errors.New("slot taken")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RetriesSerializationFailure(t *testing.T) {
	tm, mock := newManager(t, 2)

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return &pq.Error{Code: "40001"}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_GivesUpAfterMaxRetries(t *testing.T) {
	tm, mock := newManager(t, 1)

	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		mock.ExpectRollback()
	}

	calls := 0
	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return &pq.Error{Code: "40P01"}
	})

	assert.True(t, IsRetryable(err))
	assert.Equal(t, 2, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_NestedUsesOuterTransaction(t *testing.T) {
	tm, mock := newManager(t, 0)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		return tm.DoSerializable(ctx, func(ctx context.Context) error { return nil })
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
