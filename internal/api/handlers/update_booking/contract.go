package update_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	bookingModels "github.com/m04kA/BookEasy-Service/internal/service/bookings/models"
)

type BookingService interface {
	Update(ctx context.Context, id uuid.UUID, req *bookingModels.UpdateBookingRequest) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
