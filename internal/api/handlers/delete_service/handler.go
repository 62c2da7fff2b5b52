package delete_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/BookEasy-Service/internal/api/handlers"
	"github.com/m04kA/BookEasy-Service/internal/service/catalog"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/services/{id}
// Услуга с бронированиями только деактивируется, в ответе softDeleted=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID, err := handlers.UUIDVar(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /admin/services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.service.Delete(r.Context(), serviceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			h.logger.Warn("DELETE /admin/services/{id} - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)
			return
		}
		h.logger.Error("DELETE /admin/services/{id} - Failed to delete service: service_id=%s, error=%v", serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/services/{id} - Service deleted: service_id=%s, soft=%t", serviceID, result.SoftDeleted)
	handlers.RespondJSON(w, http.StatusOK, result)
}
