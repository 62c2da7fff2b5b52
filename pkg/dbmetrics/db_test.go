package dbmetrics

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookEasy-Service/pkg/metrics"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM bookings"))
	assert.Equal(t, "insert", operation("  INSERT\nINTO bookings"))
	assert.Equal(t, "unknown", operation(""))
}

func TestGetExecutor_PrefersContextTx(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db := Plain(sqlDB)
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db))

	mock.ExpectBegin()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Same(t, tx, GetExecutor(txCtx, db))

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_ObservesQueries(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())
	stop := make(chan struct{})
	defer close(stop)

	db := WrapWithDefault(sqlDB, m, "bookeasy", stop)

	mock.ExpectExec("DELETE FROM services").WillReturnResult(sqlmock.NewResult(0, 1))
	_, err = db.ExecContext(context.Background(), "DELETE FROM services WHERE id = $1", 1)
	require.NoError(t, err)

	assert.Equal(t, 1, testutil.CollectAndCount(m.DBQueryDuration, "db_query_duration_seconds"))
	require.NoError(t, mock.ExpectationsWereMet())
}
