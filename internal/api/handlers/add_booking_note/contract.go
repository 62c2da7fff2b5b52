package add_booking_note

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	bookingModels "github.com/m04kA/BookEasy-Service/internal/service/bookings/models"
)

type BookingService interface {
	AddNote(ctx context.Context, id uuid.UUID, req *bookingModels.AddNoteRequest) (*domain.BookingNote, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
