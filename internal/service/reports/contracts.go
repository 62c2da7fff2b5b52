package reports

import (
	"context"
	"time"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Count(ctx context.Context, filter domain.BookingCountFilter) (int, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
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
