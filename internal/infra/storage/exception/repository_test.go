package exception

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	"github.com/m04kA/BookEasy-Service/pkg/dbmetrics"
	"github.com/m04kA/BookEasy-Service/pkg/types"
)

var paris = time.FixedZone("CET", 3600)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewRepository(dbmetrics.Plain(sqlDB), paris), mock
}

func TestGetByDate_QueriesCalendarDate(t *testing.T) {
	repo, mock := newRepo(t)

	// 23:30 по Парижу - все еще 24 декабря
	date := time.Date(2026, 12, 24, 23, 30, 0, 0, paris)

	mock.ExpectQuery(regexp.QuoteMeta("FROM availability_exceptions WHERE date = $1")).
		WithArgs("2026-12-24").
		WillReturnRows(sqlmock.NewRows(exceptionColumns).
			AddRow(uuid.New().String(), time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC), false, "10:00:00", nil, nil, nil))

	exc, err := repo.GetByDate(context.Background(), date)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 12, 24, 0, 0, 0, 0, paris), exc.Date)
	require.NotNil(t, exc.CustomStartTime)
	assert.Equal(t, types.TimeString("10:00"), *exc.CustomStartTime)
	assert.Nil(t, exc.CustomEndTime)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Duplicate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO availability_exceptions").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.AvailabilityException{
		Date:     time.Date(2026, 12, 25, 0, 0, 0, 0, paris),
		IsClosed: true,
	})

	assert.ErrorIs(t, err, ErrDuplicateException)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("DELETE FROM availability_exceptions").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrExceptionNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
