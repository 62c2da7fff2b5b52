package create_exception

import (
	"errors"
	"net/http"

	"github.com/m04kA/BookEasy-Service/internal/api/handlers"
	"github.com/m04kA/BookEasy-Service/internal/service/availability"
	availabilityModels "github.com/m04kA/BookEasy-Service/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации исключения расписания"
	msgDuplicateException = "исключение на эту дату уже существует"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/availability-exceptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req availabilityModels.CreateExceptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/availability-exceptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	exception, err := h.service.CreateException(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /admin/availability-exceptions - Validation failed: %v", err)
			handlers.RespondValidationError(w, msgValidationFailed, err)

		case errors.Is(err, availability.ErrDuplicateException):
			h.logger.Warn("POST /admin/availability-exceptions - Duplicate exception: date=%s", req.Date)
			handlers.RespondConflict(w, msgDuplicateException)

		default:
			h.logger.Error("POST /admin/availability-exceptions - Failed to create exception: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/availability-exceptions - Exception created: exception_id=%s, date=%s", exception.ID, exception.Date)
	handlers.RespondJSON(w, http.StatusCreated, exception)
}
