package list_services

import (
	"context"

	catalogModels "github.com/m04kA/BookEasy-Service/internal/service/catalog/models"
)

type CatalogService interface {
	List(ctx context.Context, includeInactive bool) ([]*catalogModels.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
