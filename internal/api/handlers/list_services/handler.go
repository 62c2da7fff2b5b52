package list_services

import (
	"net/http"

	"github.com/m04kA/BookEasy-Service/internal/api/handlers"
)

type Handler struct {
	service         CatalogService
	includeInactive bool
	logger          Logger
}

// NewHandler публичный каталог: только активные услуги
func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// NewAdminHandler каталог администратора, включая неактивные услуги
func NewAdminHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service:         service,
		includeInactive: true,
		logger:          logger,
	}
}

// Handle GET /api/v1/services, GET /api/v1/admin/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.List(r.Context(), h.includeInactive)
	if err != nil {
		h.logger.Error("GET %s - Failed to list services: %v", r.URL.Path, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET %s - Services retrieved: count=%d", r.URL.Path, len(services))
	handlers.RespondJSON(w, http.StatusOK, services)
}
