package update_rule

import (
	"errors"
	"net/http"

	"github.com/m04kA/BookEasy-Service/internal/api/handlers"
	"github.com/m04kA/BookEasy-Service/internal/service/availability"
	availabilityModels "github.com/m04kA/BookEasy-Service/internal/service/availability/models"
)

const (
	msgInvalidRuleID      = "некорректный ID правила"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации правила доступности"
	msgRuleNotFound       = "правило не найдено"
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

// Handle PATCH /api/v1/admin/availability-rules/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ruleID, err := handlers.UUIDVar(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /admin/availability-rules/{id} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	var req availabilityModels.UpdateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/availability-rules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	rule, err := h.service.UpdateRule(r.Context(), ruleID, &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/availability-rules/{id} - Validation failed: rule_id=%s, error=%v", ruleID, err)
			handlers.RespondValidationError(w, msgValidationFailed, err)

		case errors.Is(err, availability.ErrRuleNotFound):
			h.logger.Warn("PATCH /admin/availability-rules/{id} - Rule not found: rule_id=%s", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		case errors.Is(err, availability.ErrDuplicateRule):
			h.logger.Warn("PATCH /admin/availability-rules/{id} - Duplicate rule: rule_id=%s", ruleID)
			handlers.RespondConflict(w, msgDuplicateRule)

		default:
			h.logger.Error("PATCH /admin/availability-rules/{id} - Failed to update rule: rule_id=%s, error=%v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/availability-rules/{id} - Rule updated: rule_id=%s", ruleID)
	handlers.RespondJSON(w, http.StatusOK, rule)
}
