package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

// AdminRepository интерфейс репозитория администраторов
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminUser, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
