package get_me

import (
	"errors"
	"net/http"

	"github.com/m04kA/BookEasy-Service/internal/api/handlers"
	"github.com/m04kA/BookEasy-Service/internal/api/middleware"
	"github.com/m04kA/BookEasy-Service/internal/service/auth"
)

const msgUnauthorized = "требуется авторизация"

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/auth/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.AdminFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	profile, err := h.service.Me(r.Context(), admin.ID)
	if err != nil {
		// Токен валиден, но администратора удалили
		if errors.Is(err, auth.ErrAdminNotFound) {
			h.logger.Warn("GET /auth/me - Admin not found: admin_id=%s", admin.ID)
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}
		h.logger.Error("GET /auth/me - Failed to get admin: admin_id=%s, error=%v", admin.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, profile)
}
