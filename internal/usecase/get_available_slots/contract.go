package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListOverlapping получает не отмененные бронирования, пересекающие интервал
	ListOverlapping(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// RuleRepository интерфейс репозитория правил
type RuleRepository interface {
	GetByWeekday(ctx context.Context, weekday int) (*domain.AvailabilityRule, error)
}

// ExceptionRepository интерфейс репозитория исключений
type ExceptionRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.AvailabilityException, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
