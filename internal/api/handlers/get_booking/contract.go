package get_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

type BookingService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
