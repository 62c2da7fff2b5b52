package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/BookEasy-Service/internal/api/handlers"
	bookingModels "github.com/m04kA/BookEasy-Service/internal/service/bookings/models"
	createBooking "github.com/m04kA/BookEasy-Service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgValidationFailed    = "ошибка валидации данных бронирования"
	msgServiceUnavailable  = "услуга не найдена или недоступна"
	msgSlotNotAvailable    = "выбранный временной слот недоступен"
	msgConcurrentAdmission = "слот сейчас бронируется другим клиентом, повторите попытку"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq := req.ToUseCaseRequest()

	booking, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondValidationError(w, msgValidationFailed, err)

		case errors.Is(err, createBooking.ErrServiceUnavailable):
			h.logger.Warn("POST /bookings - Service unavailable: service_id=%s", useCaseReq.ServiceID)
			handlers.RespondBadRequest(w, msgServiceUnavailable)

		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot not available: service_id=%s, start_at=%s",
				useCaseReq.ServiceID, useCaseReq.StartAt)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrConcurrentAdmission):
			h.logger.Warn("POST /bookings - Concurrent admission: service_id=%s, start_at=%s",
				useCaseReq.ServiceID, useCaseReq.StartAt)
			handlers.RespondConflict(w, msgConcurrentAdmission)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: service_id=%s, error=%v", useCaseReq.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, service_id=%s", booking.ID, booking.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, bookingModels.FromDomainBooking(booking))
}
