package list_bookings

import (
	"context"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	bookingModels "github.com/m04kA/BookEasy-Service/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context, req *bookingModels.ListBookingsRequest) (*domain.BookingPage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
