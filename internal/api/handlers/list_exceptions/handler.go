package list_exceptions

import (
	"net/http"

	"github.com/m04kA/BookEasy-Service/internal/api/handlers"
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

// Handle GET /api/v1/admin/availability-exceptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	exceptions, err := h.service.ListExceptions(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/availability-exceptions - Failed to list exceptions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, exceptions)
}
