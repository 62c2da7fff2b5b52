package update_rule

import (
	"context"

	"github.com/google/uuid"

	availabilityModels "github.com/m04kA/BookEasy-Service/internal/service/availability/models"
)

type AvailabilityService interface {
	UpdateRule(ctx context.Context, id uuid.UUID, req *availabilityModels.UpdateRuleRequest) (*availabilityModels.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
