package get_me

import (
	"context"

	"github.com/google/uuid"

	authModels "github.com/m04kA/BookEasy-Service/internal/service/auth/models"
)

type AuthService interface {
	Me(ctx context.Context, adminID uuid.UUID) (*authModels.AdminResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
