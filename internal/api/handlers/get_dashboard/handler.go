package get_dashboard

import (
	"net/http"

	"github.com/m04kA/BookEasy-Service/internal/api/handlers"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/dashboard - Failed to build dashboard: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDashboard(dashboard))
}
