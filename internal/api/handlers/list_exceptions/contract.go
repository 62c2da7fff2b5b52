package list_exceptions

import (
	"context"

	availabilityModels "github.com/m04kA/BookEasy-Service/internal/service/availability/models"
)

type AvailabilityService interface {
	ListExceptions(ctx context.Context) ([]*availabilityModels.ExceptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
