package booking

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	"github.com/m04kA/BookEasy-Service/pkg/dbmetrics"
	"github.com/m04kA/BookEasy-Service/pkg/psqlbuilder"
)

// Колонки бронирования вместе с присоединенной услугой
var bookingColumns = []string{
	"b.id",
	"b.service_id",
	"b.start_at",
	"b.end_at",
	"b.customer_name",
	"b.customer_email",
	"b.customer_phone",
	"b.customer_note",
	"b.status",
	"b.service_name",
	"b.service_price_cents",
	"b.created_at",
	"b.updated_at",
	"s.id",
	"s.name",
	"s.duration_min",
	"s.price_cents",
	"s.description",
	"s.is_active",
	"s.created_at",
	"s.updated_at",
}

// Соответствие полей сортировки колонкам
var sortColumns = map[string]string{
	domain.SortByCreatedAt:    "b.created_at",
	domain.SortByUpdatedAt:    "b.updated_at",
	domain.SortByStartAt:      "b.start_at",
	domain.SortByCustomerName: "b.customer_name",
	domain.SortByStatus:       "b.status",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		LeftJoin("services s ON s.id = b.service_id")
}

// Create создает новое бронирование.
// Вызывается внутри сериализуемой транзакции usecase создания бронирования.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"service_id",
			"start_at",
			"end_at",
			"customer_name",
			"customer_email",
			"customer_phone",
			"customer_note",
			"status",
			"service_name",
			"service_price_cents",
		).
		Values(
			booking.ID,
			booking.ServiceID,
			booking.StartAt,
			booking.EndAt,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.CustomerNote,
			booking.Status,
			booking.ServiceName,
			booking.ServicePriceCents,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID вместе с услугой (без заметок)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return r.getByID(ctx, "GetByID", id, false)
}

// GetByIDForUpdate как GetByID, но внутри транзакции блокирует строку бронирования
func (r *Repository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return r.getByID(ctx, "GetByIDForUpdate", id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) getByID(ctx context.Context, op string, id uuid.UUID, lock bool) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectBookings().
		Where(squirrel.Eq{"b.id": id})

	if lock {
		// услуга на nullable-стороне LEFT JOIN, блокируем только бронирование
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %w", ErrScanRow, op, err)
	}

	return booking, nil
}

// ListOverlapping возвращает не отмененные бронирования, пересекающие интервал [from, to).
// Внутри транзакции строки блокируются (FOR UPDATE).
func (r *Repository) ListOverlapping(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"service_id",
		"start_at",
		"end_at",
		"status",
	).
		From("bookings").
		Where(squirrel.Lt{"start_at": to}).
		Where(squirrel.Gt{"end_at": from}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("start_at ASC")

	// Блокируем бронирования дня, чтобы параллельный допуск ждал нашей транзакции
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.ServiceID, &b.StartAt, &b.EndAt, &b.Status); err != nil {
			return nil, fmt.Errorf("%w: ListOverlapping - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// List возвращает страницу бронирований и общее количество по фильтру.
// Query должен быть нормализован сервисом (page, limit, sort заданы).
func (r *Repository) List(ctx context.Context, q *domain.BookingQuery) ([]*domain.Booking, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	sortColumn, ok := sortColumns[q.SortBy]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", ErrUnknownSortField, q.SortBy)
	}
	order := "DESC"
	if q.SortOrder == domain.SortAsc {
		order = "ASC"
	}

	where := queryFilter(q)

	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").
		From("bookings b").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - count bookings: %w", ErrScanRow, err)
	}

	query, args, err := selectBookings().
		Where(where).
		OrderBy(fmt.Sprintf("%s %s", sortColumn, order), "b.id ASC").
		Limit(uint64(q.Limit)).
		Offset(uint64(q.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	bookings, err := r.query(ctx, executor, query, args)
	if err != nil {
		return nil, 0, fmt.Errorf("List: %w", err)
	}

	return bookings, total, nil
}

func queryFilter(q *domain.BookingQuery) squirrel.And {
	where := squirrel.And{}

	if q.Status != nil {
		where = append(where, squirrel.Eq{"b.status": *q.Status})
	}
	if q.ServiceID != nil {
		where = append(where, squirrel.Eq{"b.service_id": *q.ServiceID})
	}
	if q.DateFrom != nil {
		where = append(where, squirrel.GtOrEq{"b.start_at": *q.DateFrom})
	}
	if q.DateTo != nil {
		where = append(where, squirrel.LtOrEq{"b.start_at": *q.DateTo})
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"b.customer_name": pattern},
			squirrel.ILike{"b.customer_email": pattern},
		})
	}

	return where
}

// escapeLike экранирует спецсимволы LIKE
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// ListRecent возвращает последние созданные не отмененные бронирования
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookings().
		Where(squirrel.NotEq{"b.status": domain.StatusCancelled}).
		OrderBy("b.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - build select query: %v", ErrBuildQuery, err)
	}

	bookings, err := r.query(ctx, executor, query, args)
	if err != nil {
		return nil, fmt.Errorf("ListRecent: %w", err)
	}
	return bookings, nil
}

// ListAll возвращает все бронирования, новые первыми (для экспорта)
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookings().
		OrderBy("b.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	bookings, err := r.query(ctx, executor, query, args)
	if err != nil {
		return nil, fmt.Errorf("ListAll: %w", err)
	}
	return bookings, nil
}

// Count считает бронирования по фильтру
func (r *Repository) Count(ctx context.Context, filter domain.BookingCountFilter) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	where := squirrel.And{}
	if filter.StartFrom != nil {
		where = append(where, squirrel.GtOrEq{"start_at": *filter.StartFrom})
	}
	if filter.StartTo != nil {
		where = append(where, squirrel.LtOrEq{"start_at": *filter.StartTo})
	}
	if filter.UpdatedFrom != nil {
		where = append(where, squirrel.GtOrEq{"updated_at": *filter.UpdatedFrom})
	}
	if filter.UpdatedTo != nil {
		where = append(where, squirrel.LtOrEq{"updated_at": *filter.UpdatedTo})
	}
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"status": *filter.Status})
	}
	if filter.ExcludeStatus != nil {
		where = append(where, squirrel.NotEq{"status": *filter.ExcludeStatus})
	}

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan: %w", ErrScanRow, err)
	}

	return count, nil
}

// Update применяет частичное обновление бронирования.
// Пустой патч только проверяет существование записи.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, patch *domain.BookingPatch) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if patch.IsEmpty() {
		_, err := r.GetByID(ctx, id)
		return err
	}

	updateBuilder := psqlbuilder.Update("bookings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if patch.Status != nil {
		updateBuilder = updateBuilder.Set("status", *patch.Status)
	}
	if patch.CustomerName != nil {
		updateBuilder = updateBuilder.Set("customer_name", *patch.CustomerName)
	}
	if patch.CustomerEmail != nil {
		updateBuilder = updateBuilder.Set("customer_email", *patch.CustomerEmail)
	}
	if patch.CustomerPhone != nil {
		updateBuilder = updateBuilder.Set("customer_phone", nullIfEmpty(*patch.CustomerPhone))
	}
	if patch.CustomerNote != nil {
		updateBuilder = updateBuilder.Set("customer_note", nullIfEmpty(*patch.CustomerNote))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *Repository) query(ctx context.Context, executor DBExecutor, query string, args []interface{}) ([]*domain.Booking, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует строку бронирования с присоединенной услугой
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking                            domain.Booking
		createdAt, updatedAt               sql.NullTime
		serviceID                          uuid.NullUUID
		serviceName                        sql.NullString
		serviceDuration, servicePrice      sql.NullInt64
		serviceDescription                 sql.NullString
		serviceActive                      sql.NullBool
		serviceCreatedAt, serviceUpdatedAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.ServiceID,
		&booking.StartAt,
		&booking.EndAt,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.CustomerNote,
		&booking.Status,
		&booking.ServiceName,
		&booking.ServicePriceCents,
		&createdAt,
		&updatedAt,
		&serviceID,
		&serviceName,
		&serviceDuration,
		&servicePrice,
		&serviceDescription,
		&serviceActive,
		&serviceCreatedAt,
		&serviceUpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	if serviceID.Valid {
		booking.Service = &domain.Service{
			ID:          serviceID.UUID,
			Name:        serviceName.String,
			DurationMin: int(serviceDuration.Int64),
			PriceCents:  int(servicePrice.Int64),
			IsActive:    serviceActive.Bool,
			CreatedAt:   serviceCreatedAt.Time,
			UpdatedAt:   serviceUpdatedAt.Time,
		}
		if serviceDescription.Valid {
			booking.Service.Description = &serviceDescription.String
		}
	}

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}
