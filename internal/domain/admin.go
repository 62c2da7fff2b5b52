package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser оператор панели управления
type AdminUser struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
