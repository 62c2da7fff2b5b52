package list_rules

import (
	"context"

	availabilityModels "github.com/m04kA/BookEasy-Service/internal/service/availability/models"
)

type AvailabilityService interface {
	ListRules(ctx context.Context) ([]*availabilityModels.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
