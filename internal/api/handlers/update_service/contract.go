package update_service

import (
	"context"

	"github.com/google/uuid"

	catalogModels "github.com/m04kA/BookEasy-Service/internal/service/catalog/models"
)

type CatalogService interface {
	Update(ctx context.Context, id uuid.UUID, req *catalogModels.UpdateServiceRequest) (*catalogModels.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
