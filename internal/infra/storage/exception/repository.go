package exception

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	"github.com/m04kA/BookEasy-Service/pkg/dbmetrics"
	"github.com/m04kA/BookEasy-Service/pkg/psqlbuilder"
	"github.com/m04kA/BookEasy-Service/pkg/types"
)

const uniqueViolation = "23505"

var exceptionColumns = []string{
	"id",
	"date",
	"is_closed",
	"custom_start_time",
	"custom_end_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий исключений расписания.
// Колонка date хранит календарную дату, в домене она превращается в полночь в loc.
type Repository struct {
	db  DBExecutor
	loc *time.Location
}

// NewRepository создает новый экземпляр репозитория исключений
func NewRepository(db DBExecutor, loc *time.Location) *Repository {
	if loc == nil {
		loc = time.Local
	}
	return &Repository{db: db, loc: loc}
}

// Create создает исключение на дату
func (r *Repository) Create(ctx context.Context, exc *domain.AvailabilityException) (*domain.AvailabilityException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if exc.ID == uuid.Nil {
		exc.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("availability_exceptions").
		Columns("id", "date", "is_closed", "custom_start_time", "custom_end_time").
		Values(exc.ID, dateArg(exc.Date), exc.IsClosed, exc.CustomStartTime, exc.CustomEndTime).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateException
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	exc.CreatedAt = createdAt.Time
	exc.UpdatedAt = updatedAt.Time

	return exc, nil
}

// GetByID получает исключение по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AvailabilityException, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByDate получает исключение на календарную дату date
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.AvailabilityException, error) {
	return r.getOne(ctx, "GetByDate", squirrel.Eq{"date": dateArg(date)})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.AvailabilityException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(exceptionColumns...).
		From("availability_exceptions").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	exc, err := r.scanException(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrExceptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan exception: %w", ErrScanRow, op, err)
	}

	return exc, nil
}

// List возвращает все исключения по возрастанию даты
func (r *Repository) List(ctx context.Context) ([]*domain.AvailabilityException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(exceptionColumns...).
		From("availability_exceptions").
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	exceptions := make([]*domain.AvailabilityException, 0)
	for rows.Next() {
		exc, err := r.scanException(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		exceptions = append(exceptions, exc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return exceptions, nil
}

// Delete удаляет исключение
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_exceptions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrExceptionNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanException(row rowScanner) (*domain.AvailabilityException, error) {
	var (
		exc                  domain.AvailabilityException
		date                 time.Time
		customStart          types.TimeString
		customEnd            types.TimeString
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&exc.ID,
		&date,
		&exc.IsClosed,
		&customStart,
		&customEnd,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	exc.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, r.loc)
	if !customStart.IsZero() {
		exc.CustomStartTime = &customStart
	}
	if !customEnd.IsZero() {
		exc.CustomEndTime = &customEnd
	}
	exc.CreatedAt = createdAt.Time
	exc.UpdatedAt = updatedAt.Time

	return &exc, nil
}

// dateArg календарная дата для колонки DATE без учета часового пояса
func dateArg(t time.Time) string {
	return t.Format(domain.DateFormat)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
