package add_booking_note

import (
	"errors"
	"net/http"

	"github.com/m04kA/BookEasy-Service/internal/api/handlers"
	"github.com/m04kA/BookEasy-Service/internal/service/bookings"
	bookingModels "github.com/m04kA/BookEasy-Service/internal/service/bookings/models"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "текст заметки должен содержать от 1 до 1000 символов"
	msgBookingNotFound    = "бронирование не найдено"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/bookings/{id}/notes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.UUIDVar(r, "id")
	if err != nil {
		h.logger.Warn("POST /admin/bookings/{id}/notes - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req bookingModels.AddNoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bookings/{id}/notes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	note, err := h.service.AddNote(r.Context(), bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /admin/bookings/{id}/notes - Validation failed: booking_id=%s", bookingID)
			handlers.RespondValidationError(w, msgValidationFailed, err)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /admin/bookings/{id}/notes - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("POST /admin/bookings/{id}/notes - Failed to add note: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/bookings/{id}/notes - Note added: booking_id=%s, note_id=%s", bookingID, note.ID)
	handlers.RespondJSON(w, http.StatusCreated, bookingModels.FromDomainNote(note))
}
