package delete_service

import (
	"context"

	"github.com/google/uuid"

	catalogModels "github.com/m04kA/BookEasy-Service/internal/service/catalog/models"
)

type CatalogService interface {
	Delete(ctx context.Context, id uuid.UUID) (*catalogModels.DeleteServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
