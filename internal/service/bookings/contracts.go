package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	List(ctx context.Context, q *domain.BookingQuery) ([]*domain.Booking, int, error)
	Update(ctx context.Context, id uuid.UUID, patch *domain.BookingPatch) error
	AddNote(ctx context.Context, note *domain.BookingNote) (*domain.BookingNote, error)
	ListNotes(ctx context.Context, bookingID uuid.UUID) ([]domain.BookingNote, error)
}

// Notifier уведомляет клиента об отмене бронирования
type Notifier interface {
	BookingCancelled(ctx context.Context, booking *domain.Booking) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
