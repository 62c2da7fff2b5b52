package delete_exception

import (
	"errors"
	"net/http"

	"github.com/m04kA/BookEasy-Service/internal/api/handlers"
	"github.com/m04kA/BookEasy-Service/internal/service/availability"
)

const (
	msgInvalidExceptionID = "некорректный ID исключения"
	msgExceptionNotFound  = "исключение не найдено"
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

// Handle DELETE /api/v1/admin/availability-exceptions/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	exceptionID, err := handlers.UUIDVar(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /admin/availability-exceptions/{id} - Invalid exception ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExceptionID)
		return
	}

	if err := h.service.DeleteException(r.Context(), exceptionID); err != nil {
		if errors.Is(err, availability.ErrExceptionNotFound) {
			h.logger.Warn("DELETE /admin/availability-exceptions/{id} - Exception not found: exception_id=%s", exceptionID)
			handlers.RespondNotFound(w, msgExceptionNotFound)
			return
		}
		h.logger.Error("DELETE /admin/availability-exceptions/{id} - Failed to delete exception: exception_id=%s, error=%v", exceptionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/availability-exceptions/{id} - Exception deleted: exception_id=%s", exceptionID)
	w.WriteHeader(http.StatusNoContent)
}
