package admin

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	"github.com/m04kA/BookEasy-Service/pkg/dbmetrics"
	"github.com/m04kA/BookEasy-Service/pkg/psqlbuilder"
)

var adminColumns = []string{"id", "email", "password_hash", "created_at", "updated_at"}

// Repository репозиторий администраторов
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEmail ищет администратора по email без учета регистра
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	return r.getOne(ctx, "GetByEmail", squirrel.Eq{"email": strings.ToLower(email)})
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminUser, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.AdminUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(adminColumns...).
		From("admin_users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var (
		admin                domain.AdminUser
		createdAt, updatedAt sql.NullTime
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan admin: %w", ErrScanRow, op, err)
	}

	admin.CreatedAt = createdAt.Time
	admin.UpdatedAt = updatedAt.Time

	return &admin, nil
}

// Upsert создает администратора или обновляет пароль существующего (используется при сидировании)
func (r *Repository) Upsert(ctx context.Context, admin *domain.AdminUser) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("admin_users").
		Columns("id", "email", "password_hash").
		Values(admin.ID, strings.ToLower(admin.Email), admin.PasswordHash).
		Suffix("ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}
