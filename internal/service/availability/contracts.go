package availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

// RuleRepository интерфейс репозитория правил доступности
type RuleRepository interface {
	Create(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AvailabilityRule, error)
	GetByWeekday(ctx context.Context, weekday int) (*domain.AvailabilityRule, error)
	List(ctx context.Context) ([]*domain.AvailabilityRule, error)
	Update(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExceptionRepository интерфейс репозитория исключений
type ExceptionRepository interface {
	Create(ctx context.Context, exc *domain.AvailabilityException) (*domain.AvailabilityException, error)
	GetByDate(ctx context.Context, date time.Time) (*domain.AvailabilityException, error)
	List(ctx context.Context) ([]*domain.AvailabilityException, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
