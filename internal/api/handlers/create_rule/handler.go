package create_rule

import (
	"errors"
	"net/http"

	"github.com/m04kA/BookEasy-Service/internal/api/handlers"
	"github.com/m04kA/BookEasy-Service/internal/service/availability"
	availabilityModels "github.com/m04kA/BookEasy-Service/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации правила доступности"
	msgDuplicateRule      = "правило на этот день недели уже существует"
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

// Handle POST /api/v1/admin/availability-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req availabilityModels.CreateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/availability-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	rule, err := h.service.CreateRule(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /admin/availability-rules - Validation failed: %v", err)
			handlers.RespondValidationError(w, msgValidationFailed, err)

		case errors.Is(err, availability.ErrDuplicateRule):
			h.logger.Warn("POST /admin/availability-rules - Duplicate rule: %v", err)
			handlers.RespondConflict(w, msgDuplicateRule)

		default:
			h.logger.Error("POST /admin/availability-rules - Failed to create rule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/availability-rules - Rule created: rule_id=%s, day_of_week=%d", rule.ID, rule.DayOfWeek)
	handlers.RespondJSON(w, http.StatusCreated, rule)
}
