package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/BookEasy-Service/internal/api/handlers"
	"github.com/m04kA/BookEasy-Service/internal/service/bookings"
	bookingModels "github.com/m04kA/BookEasy-Service/internal/service/bookings/models"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgBookingNotFound  = "бронирование не найдено"
	msgCannotCancel     = "бронирование в текущем статусе нельзя отменить"
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

// Handle POST /api/v1/admin/bookings/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.UUIDVar(r, "id")
	if err != nil {
		h.logger.Warn("POST /admin/bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.Cancel(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /admin/bookings/{id}/cancel - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("POST /admin/bookings/{id}/cancel - Cannot cancel: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("POST /admin/bookings/{id}/cancel - Failed to cancel booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/bookings/{id}/cancel - Booking cancelled: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, bookingModels.FromDomainBooking(booking))
}
