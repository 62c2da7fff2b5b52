package rule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	"github.com/m04kA/BookEasy-Service/pkg/dbmetrics"
	"github.com/m04kA/BookEasy-Service/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var ruleColumns = []string{
	"id",
	"day_of_week",
	"start_time",
	"end_time",
	"slot_step_min",
	"capacity",
	"created_at",
	"updated_at",
}

// Repository репозиторий правил доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает правило. Второе правило на тот же день недели отклоняется уникальным индексом.
func (r *Repository) Create(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if rule.ID == uuid.Nil {
		rule.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("availability_rules").
		Columns("id", "day_of_week", "start_time", "end_time", "slot_step_min", "capacity").
		Values(rule.ID, rule.DayOfWeek, rule.StartTime, rule.EndTime, rule.SlotStepMin, rule.Capacity).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateRule
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// GetByID получает правило по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AvailabilityRule, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByWeekday получает правило для дня недели (0 - понедельник)
func (r *Repository) GetByWeekday(ctx context.Context, weekday int) (*domain.AvailabilityRule, error) {
	return r.getOne(ctx, "GetByWeekday", squirrel.Eq{"day_of_week": weekday})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("availability_rules").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan rule: %w", ErrScanRow, op, err)
	}

	return rule, nil
}

// List возвращает все правила по дням недели
func (r *Repository) List(ctx context.Context) ([]*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("availability_rules").
		OrderBy("day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.AvailabilityRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return rules, nil
}

// Update сохраняет все поля правила
func (r *Repository) Update(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_rules").
		Set("day_of_week", rule.DayOfWeek).
		Set("start_time", rule.StartTime).
		Set("end_time", rule.EndTime).
		Set("slot_step_min", rule.SlotStepMin).
		Set("capacity", rule.Capacity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rule.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if isUniqueViolation(err) {
		return nil, ErrDuplicateRule
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// Delete удаляет правило
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_rules").
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
		return ErrRuleNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRule(row rowScanner) (*domain.AvailabilityRule, error) {
	var (
		rule                 domain.AvailabilityRule
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&rule.ID,
		&rule.DayOfWeek,
		&rule.StartTime,
		&rule.EndTime,
		&rule.SlotStepMin,
		&rule.Capacity,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
