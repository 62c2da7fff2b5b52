package delete_rule

import (
	"errors"
	"net/http"

	"github.com/m04kA/BookEasy-Service/internal/api/handlers"
	"github.com/m04kA/BookEasy-Service/internal/service/availability"
)

const (
	msgInvalidRuleID = "некорректный ID правила"
	msgRuleNotFound  = "правило не найдено"
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

// Handle DELETE /api/v1/admin/availability-rules/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ruleID, err := handlers.UUIDVar(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /admin/availability-rules/{id} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	if err := h.service.DeleteRule(r.Context(), ruleID); err != nil {
		if errors.Is(err, availability.ErrRuleNotFound) {
			h.logger.Warn("DELETE /admin/availability-rules/{id} - Rule not found: rule_id=%s", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)
			return
		}
		h.logger.Error("DELETE /admin/availability-rules/{id} - Failed to delete rule: rule_id=%s, error=%v", ruleID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/availability-rules/{id} - Rule deleted: rule_id=%s", ruleID)
	w.WriteHeader(http.StatusNoContent)
}
