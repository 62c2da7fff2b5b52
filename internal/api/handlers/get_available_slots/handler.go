package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/api/handlers"
	"github.com/m04kA/BookEasy-Service/internal/domain"
	getAvailableSlots "github.com/m04kA/BookEasy-Service/internal/usecase/get_available_slots"
)

const (
	msgInvalidServiceID   = "некорректный или отсутствующий serviceId"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgServiceNotFound    = "услуга не найдена"
	msgServiceUnavailable = "услуга недоступна для бронирования"
)

type Handler struct {
	useCase  GetAvailableSlotsUseCase
	location *time.Location
	logger   Logger
}

// NewHandler location - часовой пояс, в котором разбирается дата запроса
func NewHandler(useCase GetAvailableSlotsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/availability?serviceId={uuid}&date={YYYY-MM-DD}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceID, err := uuid.Parse(query.Get("serviceId"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid serviceId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := time.ParseInLocation(domain.DateFormat, query.Get("date"), h.location)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /availability - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceUnavailable):
			h.logger.Warn("GET /availability - Service inactive: service_id=%s", serviceID)
			handlers.RespondBadRequest(w, msgServiceUnavailable)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Validation failed: %v", err)
			handlers.RespondValidationError(w, msgInvalidDate, err)

		default:
			h.logger.Error("GET /availability - Failed to get slots: service_id=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Slots retrieved: service_id=%s, date=%s, count=%d",
		serviceID, result.Date.Format(domain.DateFormat), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
